package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotastic/quotastic/internal/adapters/http/dto"
)

// NotFoundHandler returns the JSON error envelope for unmatched routes.
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := dto.NewErrorResponse(dto.ErrorCodeNotFound, "route not found")
		if traceID := dto.GetTraceID(c); traceID != "" {
			resp.TraceID = traceID
		}

		c.JSON(http.StatusNotFound, resp)
	}
}

// MethodNotAllowedHandler returns the JSON error envelope for known routes
// hit with an unsupported method.
func MethodNotAllowedHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := dto.NewErrorResponse(dto.ErrorCodeBadRequest, "method not allowed")
		if traceID := dto.GetTraceID(c); traceID != "" {
			resp.TraceID = traceID
		}

		c.JSON(http.StatusMethodNotAllowed, resp)
	}
}
