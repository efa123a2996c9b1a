package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotebox/internal/adapters/clients"
	"github.com/jsamuelsen/quotebox/internal/platform/logging"
)

const (
	// HeaderCorrelationID spans a whole transaction rather than one hop.
	HeaderCorrelationID = clients.HeaderCorrelationID

	// ContextKeyCorrelationID is the gin.Context key holding the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// CorrelationID propagates X-Correlation-ID, minting one when this request
// starts the transaction. The outbound quote call forwards it upstream.
func CorrelationID() gin.HandlerFunc {
	return newIDMiddleware(idMiddlewareConfig{
		header:   HeaderCorrelationID,
		key:      ContextKeyCorrelationID,
		annotate: logging.WithCorrelationID,
	})
}

// GetCorrelationID returns the correlation ID, or "" outside the middleware.
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}
