package acl

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebox/internal/adapters/clients"
	"github.com/jsamuelsen/quotebox/internal/domain"
	"github.com/jsamuelsen/quotebox/internal/platform/config"
)

// testConfig returns a single-attempt client config pointed at baseURL.
func testConfig(baseURL, service string) *clients.Config {
	return &clients.Config{
		ServiceName: service,
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
	}
}

func newTestClient(t *testing.T, handler http.Handler, service string) *clients.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := clients.New(testConfig(server.URL, service))
	require.NoError(t, err)
	return client
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    httptest.NewRequest(http.MethodGet, "/api/random", nil),
	}
}

func TestMapHTTPError_Status(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		check      func(error) bool
		wantReason string
	}{
		{
			name:   "not found",
			status: http.StatusNotFound,
			check:  domain.IsNotFound,
		},
		{
			name:       "rate limited",
			status:     http.StatusTooManyRequests,
			check:      domain.IsUnavailable,
			wantReason: "rate limit exceeded",
		},
		{
			name:       "server error with flat body",
			status:     http.StatusInternalServerError,
			body:       `{"error":"Unable to fetch quote"}`,
			check:      domain.IsUnavailable,
			wantReason: "HTTP 500: Unable to fetch quote",
		},
		{
			name:       "bad gateway with nested body",
			status:     http.StatusBadGateway,
			body:       `{"error":{"code":"UPSTREAM","message":"down"}}`,
			check:      domain.IsUnavailable,
			wantReason: "HTTP 502: down",
		},
		{
			name:       "unexpected 4xx",
			status:     http.StatusTeapot,
			check:      domain.IsUnavailable,
			wantReason: "HTTP 418",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapHTTPError(response(tt.status, tt.body), nil, "zenquotes", "fetch random quote")

			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error kind: %v", err)
			if tt.wantReason != "" {
				assert.Contains(t, err.Error(), tt.wantReason)
			}
		})
	}
}

func TestMapHTTPError_ClientErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantReason string
	}{
		{"circuit open", clients.ErrCircuitOpen, "circuit breaker open"},
		{"retries exhausted", clients.ErrMaxRetriesExceeded, "max retries exceeded"},
		{"transport", errors.New("connection reset"), "fetch random quote failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapHTTPError(nil, tt.err, "zenquotes", "fetch random quote")

			assert.True(t, domain.IsUnavailable(err))
			assert.ErrorIs(t, err, tt.err, "cause stays in the chain")
			assert.Contains(t, err.Error(), tt.wantReason)
		})
	}
}

func TestMapHTTPError_SuccessReturnsNil(t *testing.T) {
	assert.NoError(t, MapHTTPError(response(http.StatusOK, ""), nil, "zenquotes", "op"))
}

func TestMapHTTPError_NilResponse(t *testing.T) {
	err := MapHTTPError(nil, nil, "zenquotes", "op")
	assert.True(t, domain.IsUnavailable(err))
}

func TestParseErrorResponse(t *testing.T) {
	tests := []struct {
		name string
		body io.Reader
		want *ErrorResponse
	}{
		{"flat string", strings.NewReader(`{"error":"Unable to fetch quote"}`), &ErrorResponse{Message: "Unable to fetch quote"}},
		{"nested object", strings.NewReader(`{"error":{"code":"X","message":"broken"}}`), &ErrorResponse{Code: "X", Message: "broken"}},
		{"top level", strings.NewReader(`{"code":"Y","message":"bad"}`), &ErrorResponse{Code: "Y", Message: "bad"}},
		{"invalid json", strings.NewReader(`<html>`), nil},
		{"empty object", strings.NewReader(`{}`), nil},
		{"nil body", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseErrorResponse(tt.body))
		})
	}
}

func TestDecodeResponse(t *testing.T) {
	type item struct {
		Q string `json:"q"`
	}

	got, err := DecodeResponse[[]item](io.NopCloser(strings.NewReader(`[{"q":"a"},{"q":"b"}]`)))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = DecodeResponse[[]item](io.NopCloser(strings.NewReader(`{"q":"a"}`)))
	require.Error(t, err)

	_, err = DecodeResponse[[]item](nil)
	require.Error(t, err)
}

func TestValidateDTO(t *testing.T) {
	text := "Be yourself."

	assert.NoError(t, ValidateDTO(&zenQuote{Q: &text, A: &text}))

	tests := []struct {
		name      string
		dto       *zenQuote
		wantField string
	}{
		{name: "missing author", dto: &zenQuote{Q: &text}, wantField: "A"},
		{name: "missing text", dto: &zenQuote{A: &text}, wantField: "Q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDTO(tt.dto)

			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
			assert.Equal(t, "failed required", validationErr.Message)
		})
	}
}

func TestTranslateFirst(t *testing.T) {
	double := func(n *int) (*int, error) {
		v := *n * 2
		return &v, nil
	}

	got, err := TranslateFirst([]int{3, 4}, double)
	require.NoError(t, err)
	assert.Equal(t, 6, *got)

	_, err = TranslateFirst([]int{}, double)
	require.Error(t, err)
}

func TestBaseAdapter(t *testing.T) {
	assert.Panics(t, func() { NewBaseAdapter(nil, "x") })

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}), "zenquotes")

	adapter := NewBaseAdapter(client, "zenquotes")
	assert.Equal(t, "zenquotes", adapter.ServiceName())

	body, err := adapter.Get(context.Background(), "/api/random", "fetch")
	assert.Nil(t, body)
	assert.True(t, domain.IsUnavailable(err))
}
