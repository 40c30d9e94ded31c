package middleware

import (
	"strconv"
	"time"

	"homeinsight-catalog/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// ContextCacheHit is set by handlers that served a search from Redis or Mongo.
const ContextCacheHit = "cache_hit"

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		// route template keeps label cardinality bounded
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, endpoint, status).Observe(duration)
	}
}
