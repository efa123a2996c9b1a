package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen/quotebox/internal/adapters/clients"
	"github.com/jsamuelsen/quotebox/internal/domain"
	"github.com/jsamuelsen/quotebox/internal/platform/logging"
)

// DefaultZenQuotesPath is the random-quote endpoint relative to the base URL.
const DefaultZenQuotesPath = "/api/random"

// ZenQuotesConfig configures a ZenQuotesClient.
type ZenQuotesConfig struct {
	// Client must have its BaseURL set to the provider root.
	Client *clients.Client
	// Path defaults to DefaultZenQuotesPath.
	Path   string
	Logger *slog.Logger
}

// ZenQuotesClient implements ports.QuoteClient and ports.HealthChecker
// against the ZenQuotes API.
type ZenQuotesClient struct {
	BaseAdapter
	path   string
	logger *slog.Logger
}

// NewZenQuotesClient creates the adapter. Panics if Client is nil.
func NewZenQuotesClient(cfg ZenQuotesConfig) *ZenQuotesClient {
	if cfg.Client == nil {
		panic("ZenQuotesClient: Client is required")
	}

	path := cfg.Path
	if path == "" {
		path = DefaultZenQuotesPath
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ZenQuotesClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, cfg.Client.ServiceName()),
		path:        path,
		logger:      logger,
	}
}

// zenQuote is one element of the provider's response array. Pointers make a
// missing field distinguishable from an empty one; a non-string value fails
// decoding outright.
type zenQuote struct {
	Q *string `json:"q" validate:"required"`
	A *string `json:"a" validate:"required"`
	H string  `json:"h"`
}

// GetRandomQuote calls the provider once and translates element 0.
func (c *ZenQuotesClient) GetRandomQuote(ctx context.Context) (*domain.Quote, error) {
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", c.path))

	body, err := c.Get(ctx, c.path, "fetch random quote")
	if err != nil {
		return nil, err
	}

	items, err := DecodeResponse[[]zenQuote](body)
	if err != nil {
		return nil, domain.WrapUnavailable(c.ServiceName(), "malformed response", err)
	}

	quote, err := TranslateFirst(items, translateZenQuote)
	if err != nil {
		return nil, domain.WrapUnavailable(c.ServiceName(), "malformed response", err)
	}

	c.logger.Log(ctx, logging.LevelTrace, "translated upstream quote",
		slog.String("author", quote.Author),
		slog.Int("candidates", len(items)),
	)

	return quote, nil
}

func translateZenQuote(ext *zenQuote) (*domain.Quote, error) {
	if err := ValidateDTO(ext); err != nil {
		return nil, err
	}

	quote := domain.NewQuote(*ext.Q, *ext.A)
	return &quote, nil
}

// Name implements ports.HealthChecker.
func (c *ZenQuotesClient) Name() string {
	return c.ServiceName()
}

// Check reports whether the provider host answers at all. It requests the
// site root rather than the quote endpoint so probes do not spend the
// provider's request quota.
func (c *ZenQuotesClient) Check(ctx context.Context) error {
	resp, err := c.client.Get(ctx, "/")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%s returned status %d", c.ServiceName(), resp.StatusCode)
	}

	return nil
}
