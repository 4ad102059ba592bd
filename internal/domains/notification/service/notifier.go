package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"blogsite-backend/internal/domains/notification"
	"blogsite-backend/internal/domains/subscriber"
	"blogsite-backend/internal/infrastructure/email"
	"blogsite-backend/pkg/logger"
	"blogsite-backend/pkg/metrics"
)

type notifierService struct {
	subscribers subscriber.Service
	email       email.EmailService
	siteURL     string
	maxInFlight int
}

func NewNotifierService(
	subscribers subscriber.Service,
	emailService email.EmailService,
	siteURL string,
	maxInFlight int,
) notification.Service {
	return &notifierService{
		subscribers: subscribers,
		email:       emailService,
		siteURL:     strings.TrimRight(siteURL, "/"),
		maxInFlight: maxInFlight,
	}
}

// NotifyNewPost fans one email out to every active subscriber. All dispatches
// run concurrently under a limit; each outcome is captured as a counter
// rather than returned as an error, so one bad mailbox cannot sink the batch.
// The active set is read once up front: a subscriber who unsubscribes while
// the broadcast is in flight may still receive this one.
func (s *notifierService) NotifyNewPost(ctx context.Context, req notification.NotifyRequest) (notification.Summary, error) {
	if req.PostTitle == "" || req.PostURL == "" {
		return notification.Summary{}, notification.ErrMissingPostInfo
	}

	subs, err := s.subscribers.ListActive(ctx)
	if err != nil {
		return notification.Summary{}, fmt.Errorf("load active subscribers: %w", err)
	}

	if len(subs) == 0 {
		return notification.Summary{}, nil
	}

	logger.Info("Starting notification fan-out", map[string]interface{}{
		"post_title":  req.PostTitle,
		"subscribers": len(subs),
	})

	var sent, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(s.maxInFlight)

	for _, sub := range subs {
		sub := sub // required under go 1.21 loopvar semantics
		g.Go(func() error {
			data := email.NewPostEmailData{
				PostTitle:       req.PostTitle,
				PostDescription: req.PostDescription,
				PostURL:         req.PostURL,
				PostImage:       req.PostImage,
				UnsubscribeURL:  s.unsubscribeURL(sub.Email),
			}

			if err := s.email.SendNewPostEmail(ctx, sub.Email, data); err != nil {
				failed.Add(1)
				metrics.EmailSendTotal.WithLabelValues("failed").Inc()
				logger.Warn("Notification dispatch failed", map[string]interface{}{
					"to":    sub.Email,
					"error": err.Error(),
				})
				return nil
			}

			sent.Add(1)
			metrics.EmailSendTotal.WithLabelValues("sent").Inc()
			return nil
		})
	}

	// Tasks never return errors; Wait only blocks until all have settled.
	_ = g.Wait()

	summary := notification.Summary{
		Sent:   int(sent.Load()),
		Failed: int(failed.Load()),
		Total:  len(subs),
	}

	logger.Info("Notification fan-out finished", map[string]interface{}{
		"sent":   summary.Sent,
		"failed": summary.Failed,
		"total":  summary.Total,
	})

	return summary, nil
}

// unsubscribeURL builds the per-recipient opt-out link embedded in the email
// footer.
func (s *notifierService) unsubscribeURL(recipient string) string {
	return s.siteURL + "/unsubscribe?email=" + url.QueryEscape(recipient)
}
