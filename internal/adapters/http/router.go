package http

import (
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotebox/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebox/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotebox/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotebox/internal/platform/telemetry"
)

// RouterConfig contains everything SetupRouter wires onto the engine.
type RouterConfig struct {
	// ServiceName names the otelgin server spans.
	ServiceName string

	HealthHandler *handlers.HealthHandler
	QuoteHandler  *handlers.QuoteHandler

	// Assets is the static tree served for non-API paths. Nil serves nothing.
	Assets fs.FS

	// RequestTimeout bounds /api requests. Zero leaves them unbounded.
	RequestTimeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware order:
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry tracing and metrics
//  5. Logging (skips /-/)
//
// Routes:
//   - /-/ operational endpoints
//   - /api/quote
//   - everything else falls through to the static asset tree
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	api := engine.Group("/api")
	api.Use(middleware.Timeout(cfg.RequestTimeout))

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(api)
	}

	engine.NoRoute(noRoute(cfg.Assets))
}

// noRoute answers unknown API paths with the JSON envelope and hands other
// GET and HEAD requests to the static file server.
func noRoute(assets fs.FS) gin.HandlerFunc {
	var files http.Handler
	if assets != nil {
		files = http.FileServer(http.FS(assets))
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		isRead := c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead

		if files == nil || !isRead || path == "/api" || strings.HasPrefix(path, "/api/") {
			dto.AbortWithErrorCode(c, dto.ErrorCodeNotFound, "resource not found")
			return
		}

		// Gin sets 404 before NoRoute handlers run; the file server owns the status.
		c.Status(http.StatusOK)
		files.ServeHTTP(c.Writer, c.Request)
	}
}
