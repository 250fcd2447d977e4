package telemetry

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"
)

// Middleware returns Gin middleware for OpenTelemetry tracing.
// Request metrics are handled separately by the Prometheus registry,
// so this only wires distributed tracing and echoes the trace ID back
// to callers via the X-Trace-ID header.
func Middleware(serviceName string) gin.HandlerFunc {
	traced := otelgin.Middleware(serviceName)

	return func(c *gin.Context) {
		traced(c)

		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().HasTraceID() {
			c.Header("X-Trace-ID", span.SpanContext().TraceID().String())
		}
	}
}
