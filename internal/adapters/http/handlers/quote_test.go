package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebox/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebox/internal/app"
	"github.com/jsamuelsen/quotebox/internal/domain"
	"github.com/jsamuelsen/quotebox/internal/mocks"
	"github.com/jsamuelsen/quotebox/internal/platform/logging"
)

// setupQuoteRouter wires a QuoteHandler over a mock upstream under /api.
func setupQuoteRouter(t *testing.T, setupMock func(*mocks.MockQuoteClient)) *gin.Engine {
	t.Helper()

	mockClient := mocks.NewMockQuoteClient(t)
	if setupMock != nil {
		setupMock(mockClient)
	}

	service := app.NewQuoteService(app.QuoteServiceConfig{
		QuoteClient: mockClient,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	router := gin.New()
	NewQuoteHandler(service).RegisterQuoteRoutes(router.Group("/api"))
	return router
}

func TestNewQuoteHandler(t *testing.T) {
	service := app.NewQuoteService(app.QuoteServiceConfig{QuoteClient: mocks.NewMockQuoteClient(t)})
	require.NotNil(t, NewQuoteHandler(service))
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	const failureBody = `{"error":"Unable to fetch quote"}`

	tests := []struct {
		name       string
		setupMock  func(*mocks.MockQuoteClient)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			setupMock: func(m *mocks.MockQuoteClient) {
				m.EXPECT().GetRandomQuote(mock.Anything).
					Return(&domain.Quote{Text: "Be yourself.", Author: "Oscar Wilde"}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"text":"Be yourself.","author":"Oscar Wilde"}`,
		},
		{
			name: "empty strings pass through",
			setupMock: func(m *mocks.MockQuoteClient) {
				m.EXPECT().GetRandomQuote(mock.Anything).
					Return(&domain.Quote{}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"text":"","author":""}`,
		},
		{
			name: "upstream unavailable",
			setupMock: func(m *mocks.MockQuoteClient) {
				m.EXPECT().GetRandomQuote(mock.Anything).
					Return(nil, domain.NewUnavailableError("zenquotes", "HTTP 503")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   failureBody,
		},
		{
			name: "unexpected error",
			setupMock: func(m *mocks.MockQuoteClient) {
				m.EXPECT().GetRandomQuote(mock.Anything).
					Return(nil, errors.New("dial tcp: connection refused")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   failureBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupQuoteRouter(t, tt.setupMock)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quote", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
		})
	}
}

func TestQuoteHandler_GetQuote_LogsCauseNotResponse(t *testing.T) {
	var logs bytes.Buffer
	router := setupQuoteRouter(t, func(m *mocks.MockQuoteClient) {
		m.EXPECT().GetRandomQuote(mock.Anything).
			Return(nil, domain.NewUnavailableError("zenquotes", "secret upstream detail"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/quote", nil)
	ctx := logging.WithContext(context.Background(), slog.New(slog.NewJSONHandler(&logs, nil)))
	req = req.WithContext(ctx)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotContains(t, w.Body.String(), "secret upstream detail")
	assert.Contains(t, logs.String(), "secret upstream detail")
	assert.Contains(t, logs.String(), "quote proxy failed")
	assert.Contains(t, logs.String(), `"error_code":"`+dto.ErrorCodeUnavailable+`"`)
}

func TestQuoteHandler_OnlyGET(t *testing.T) {
	router := setupQuoteRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/quote", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
