// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// and the quote client core to depend on abstractions rather than
// concrete implementations.
//
// Port design:
//   - Context as first parameter for cancellation and deadlines
//   - Return domain types, never external DTOs
//   - Errors use domain error types (ErrNotFound, ErrUnavailable, etc.)
package ports

import (
	"context"

	"github.com/jsamuelsen/quotebox/internal/domain"
)

// QuoteClient fetches quotes from the upstream quote provider.
// Implemented by the zenquotes ACL adapter and used by the proxy service.
type QuoteClient interface {
	// GetRandomQuote returns one random quote.
	// Returns domain.ErrUnavailable for network, status or shape failures.
	GetRandomQuote(ctx context.Context) (*domain.Quote, error)
}

// QuoteSource is where the browser quote client gets its quotes from:
// the proxy's GET /api/quote endpoint.
type QuoteSource interface {
	// FetchQuote returns the next quote to display.
	// Returns domain.ErrUnavailable when the proxy is unreachable or answers non-2xx.
	FetchQuote(ctx context.Context) (*domain.Quote, error)
}

// KeyValueStore is a persistent string key-value store, such as the
// browser's localStorage.
type KeyValueStore interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set replaces the value for key.
	Set(ctx context.Context, key, value string) error
}
