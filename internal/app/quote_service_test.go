package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebox/internal/domain"
	"github.com/jsamuelsen/quotebox/internal/mocks"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewQuoteService_PanicsWithoutQuoteClient(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{Logger: slog.Default()})
	})
}

func TestNewQuoteService_DefaultsLogger(t *testing.T) {
	svc := NewQuoteService(QuoteServiceConfig{
		QuoteClient: mocks.NewMockQuoteClient(t),
	})

	require.NotNil(t, svc)
	assert.NotNil(t, svc.logger)
}

func TestQuoteService_GetRandomQuote(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*mocks.MockQuoteClient)
		expectedQuote *domain.Quote
		errCheck      func(error) bool
	}{
		{
			name: "success",
			setupMock: func(m *mocks.MockQuoteClient) {
				m.EXPECT().GetRandomQuote(mock.Anything).
					Return(&domain.Quote{Text: "Be yourself.", Author: "Oscar Wilde"}, nil).
					Once()
			},
			expectedQuote: &domain.Quote{Text: "Be yourself.", Author: "Oscar Wilde"},
		},
		{
			name: "upstream unavailable",
			setupMock: func(m *mocks.MockQuoteClient) {
				m.EXPECT().GetRandomQuote(mock.Anything).
					Return(nil, domain.NewUnavailableError("zenquotes", "timeout")).
					Once()
			},
			errCheck: domain.IsUnavailable,
		},
		{
			name: "generic error is returned unchanged",
			setupMock: func(m *mocks.MockQuoteClient) {
				m.EXPECT().GetRandomQuote(mock.Anything).
					Return(nil, errors.New("network error")).
					Once()
			},
			errCheck: func(err error) bool {
				return err.Error() == "network error"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := mocks.NewMockQuoteClient(t)
			tt.setupMock(mockClient)

			svc := NewQuoteService(QuoteServiceConfig{
				QuoteClient: mockClient,
				Logger:      discardLogger(),
			})

			quote, err := svc.GetRandomQuote(context.Background())

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err))
				assert.Nil(t, quote)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedQuote, quote)
		})
	}
}

func TestQuoteService_GetRandomQuote_LogsCause(t *testing.T) {
	var buf bytes.Buffer
	mockClient := mocks.NewMockQuoteClient(t)
	mockClient.EXPECT().GetRandomQuote(mock.Anything).
		Return(nil, domain.NewUnavailableError("zenquotes", "HTTP 503"))

	svc := NewQuoteService(QuoteServiceConfig{
		QuoteClient: mockClient,
		Logger:      slog.New(slog.NewJSONHandler(&buf, nil)),
	})

	_, err := svc.GetRandomQuote(context.Background())
	require.Error(t, err)

	assert.Contains(t, buf.String(), "failed to fetch random quote")
	assert.Contains(t, buf.String(), "HTTP 503")
}

func TestQuoteService_GetRandomQuote_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "marker")

	mockClient := mocks.NewMockQuoteClient(t)
	mockClient.EXPECT().GetRandomQuote(ctx).
		Return(&domain.Quote{Text: "t", Author: "a"}, nil)

	svc := NewQuoteService(QuoteServiceConfig{QuoteClient: mockClient, Logger: discardLogger()})

	_, err := svc.GetRandomQuote(ctx)
	require.NoError(t, err)
}
