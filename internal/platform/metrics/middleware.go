package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware returns Gin middleware that observes every request on the
// registry: one request-counter increment and one latency sample each,
// success or failure alike.
func Middleware(registry *Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// FullPath is the route template, keeping label cardinality
		// bounded. Unmatched requests share one bucket.
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		registry.ObserveRequest(
			c.Request.Method,
			route,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
