// Package middleware provides the gin middleware chain for the quote proxy.
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotebox/internal/adapters/clients"
	"github.com/jsamuelsen/quotebox/internal/platform/logging"
)

const (
	// HeaderRequestID carries the per-request ID. It matches the header the
	// outbound client propagates.
	HeaderRequestID = clients.HeaderRequestID

	// ContextKeyRequestID is the gin.Context key holding the request ID.
	ContextKeyRequestID = "request_id"
)

// RequestID accepts an inbound X-Request-ID or mints a UUID, echoes it on
// the response and attaches it to the request context and logger.
func RequestID() gin.HandlerFunc {
	return newIDMiddleware(idMiddlewareConfig{
		header:   HeaderRequestID,
		key:      ContextKeyRequestID,
		annotate: logging.WithRequestID,
	})
}

// GetRequestID returns the request ID, or "" outside the middleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}
