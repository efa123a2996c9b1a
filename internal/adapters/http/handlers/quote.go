package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotebox/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebox/internal/app"
	"github.com/jsamuelsen/quotebox/internal/platform/logging"
)

// QuoteHandler serves the quote proxy endpoint.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// GetQuote handles GET /api/quote.
//
// On success it answers 200 {"text","author"}. Every failure answers 500
// {"error":"Unable to fetch quote"}; the cause goes to the log only.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	ctx := c.Request.Context()

	quote, err := h.service.GetRandomQuote(ctx)
	if err != nil {
		// The client always gets the fixed body; the classified code is for
		// the log only.
		_, classified := dto.MapDomainError(err)
		logging.FromContext(ctx).ErrorContext(ctx, "quote proxy failed",
			slog.Any("error", err),
			slog.String("error_code", classified.Error.Code),
			slog.String("trace_id", dto.GetTraceID(c)),
		)
		c.JSON(http.StatusInternalServerError, dto.NewQuoteError())
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// RegisterQuoteRoutes registers GET /quote on rg.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	rg.GET("/quote", h.GetQuote)
}
