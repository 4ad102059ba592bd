package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Notification emails dispatched, by outcome
	EmailSendTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_email_send_total",
			Help: "Total number of notification emails dispatched",
		},
		[]string{"status"}, // status: sent, failed
	)

	// Subscriber lifecycle transitions
	SubscriberEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscriber_events_total",
			Help: "Total number of subscriber lifecycle events",
		},
		[]string{"event"}, // event: subscribe, unsubscribe
	)
)
