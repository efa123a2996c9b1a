// Package app holds the proxy's use cases. It coordinates ports and owns the
// logging around them; transport and wire formats stay in the adapters.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/quotebox/internal/domain"
	"github.com/jsamuelsen/quotebox/internal/ports"
)

// QuoteService serves random quotes from the upstream provider.
type QuoteService struct {
	quoteClient ports.QuoteClient
	logger      *slog.Logger
}

// QuoteServiceConfig contains the quote service dependencies.
type QuoteServiceConfig struct {
	QuoteClient ports.QuoteClient
	Logger      *slog.Logger
}

// NewQuoteService creates the service. Panics if QuoteClient is nil;
// Logger defaults to slog.Default().
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.QuoteClient == nil {
		panic("QuoteService: QuoteClient is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		quoteClient: cfg.QuoteClient,
		logger:      logger,
	}
}

// GetRandomQuote makes exactly one upstream call. Nothing is cached or
// retried here; a failure is logged with its cause and returned unchanged.
func (s *QuoteService) GetRandomQuote(ctx context.Context) (*domain.Quote, error) {
	s.logger.DebugContext(ctx, "fetching random quote")

	quote, err := s.quoteClient.GetRandomQuote(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch random quote",
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "fetched random quote",
		slog.String("author", quote.Author),
	)

	return quote, nil
}
