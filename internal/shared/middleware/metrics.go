package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"blogsite-backend/pkg/metrics"
)

// Metrics records per-request latency labeled with the route template
// (e.g. /api/posts/:slug) so cardinality stays bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
