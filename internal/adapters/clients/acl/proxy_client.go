package acl

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/quotebox/internal/adapters/clients"
	"github.com/jsamuelsen/quotebox/internal/domain"
)

// ProxyQuotePath is the proxy endpoint the browser client reads.
const ProxyQuotePath = "/api/quote"

// ProxyQuoteClient implements ports.QuoteSource over the quote proxy.
type ProxyQuoteClient struct {
	BaseAdapter
	logger *slog.Logger
}

// NewProxyQuoteClient creates the adapter. Panics if client is nil.
func NewProxyQuoteClient(client *clients.Client, logger *slog.Logger) *ProxyQuoteClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProxyQuoteClient{
		BaseAdapter: NewBaseAdapter(client, "quote-proxy"),
		logger:      logger,
	}
}

type proxyQuote struct {
	Text   *string `json:"text"   validate:"required"`
	Author *string `json:"author" validate:"required"`
}

// FetchQuote requests one quote from the proxy.
func (c *ProxyQuoteClient) FetchQuote(ctx context.Context) (*domain.Quote, error) {
	body, err := c.Get(ctx, ProxyQuotePath, "fetch quote")
	if err != nil {
		c.logger.DebugContext(ctx, "proxy request failed", slog.Any("error", err))
		return nil, err
	}

	dto, err := DecodeResponse[proxyQuote](body)
	if err != nil {
		return nil, domain.WrapUnavailable(c.ServiceName(), "malformed response", err)
	}
	if err := ValidateDTO(&dto); err != nil {
		return nil, domain.WrapUnavailable(c.ServiceName(), "malformed response", err)
	}

	quote := domain.NewQuote(*dto.Text, *dto.Author)
	return &quote, nil
}
