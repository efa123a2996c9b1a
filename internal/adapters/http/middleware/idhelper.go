package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxIDLength caps caller-supplied IDs so a hostile header cannot bloat
// every log line.
const maxIDLength = 128

type idMiddlewareConfig struct {
	header   string
	key      string
	annotate func(ctx context.Context, id string) context.Context
}

func newIDMiddleware(cfg idMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(cfg.header)
		if id == "" || len(id) > maxIDLength {
			id = uuid.NewString()
		}

		c.Set(cfg.key, id)
		c.Header(cfg.header, id)

		if cfg.annotate != nil {
			c.Request = c.Request.WithContext(cfg.annotate(c.Request.Context(), id))
		}

		c.Next()
	}
}
