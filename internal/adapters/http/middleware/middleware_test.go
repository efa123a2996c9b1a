package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebox/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebox/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// captureLogger installs a JSON logger into each request context and
// returns the buffer it writes to.
func captureLogger(engine *gin.Engine) *bytes.Buffer {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	engine.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		c.Next()
	})
	return &buf
}

func perform(engine *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestIDMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		middleware gin.HandlerFunc
		header     string
		get        func(*gin.Context) string
		fromCtx    func(context.Context) string
	}{
		{
			name:       "request id",
			middleware: RequestID(),
			header:     HeaderRequestID,
			get:        GetRequestID,
			fromCtx:    logging.RequestIDFromContext,
		},
		{
			name:       "correlation id",
			middleware: CorrelationID(),
			header:     HeaderCorrelationID,
			get:        GetCorrelationID,
			fromCtx:    logging.CorrelationIDFromContext,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" generated", func(t *testing.T) {
			var fromGin, fromCtx string

			engine := gin.New()
			engine.Use(tt.middleware)
			engine.GET("/", func(c *gin.Context) {
				fromGin = tt.get(c)
				fromCtx = tt.fromCtx(c.Request.Context())
			})

			w := perform(engine, http.MethodGet, "/", nil)

			_, err := uuid.Parse(fromGin)
			require.NoError(t, err)
			assert.Equal(t, fromGin, fromCtx)
			assert.Equal(t, fromGin, w.Header().Get(tt.header))
		})

		t.Run(tt.name+" propagated", func(t *testing.T) {
			var got string

			engine := gin.New()
			engine.Use(tt.middleware)
			engine.GET("/", func(c *gin.Context) { got = tt.get(c) })

			w := perform(engine, http.MethodGet, "/", map[string]string{tt.header: "abc-123"})

			assert.Equal(t, "abc-123", got)
			assert.Equal(t, "abc-123", w.Header().Get(tt.header))
		})

		t.Run(tt.name+" oversized replaced", func(t *testing.T) {
			var got string

			engine := gin.New()
			engine.Use(tt.middleware)
			engine.GET("/", func(c *gin.Context) { got = tt.get(c) })

			perform(engine, http.MethodGet, "/", map[string]string{tt.header: strings.Repeat("a", maxIDLength+1)})

			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestGetIDs_WithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
	assert.Empty(t, GetCorrelationID(c))
}

func TestIDMiddleware_EnrichesLogger(t *testing.T) {
	engine := gin.New()
	buf := captureLogger(engine)
	engine.Use(RequestID(), CorrelationID())
	engine.GET("/", func(c *gin.Context) {
		logging.FromContext(c.Request.Context()).Info("hello")
	})

	perform(engine, http.MethodGet, "/", map[string]string{
		HeaderRequestID:     "req-1",
		HeaderCorrelationID: "corr-1",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "corr-1", entry["correlation_id"])
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
		wantLog   bool
	}{
		{name: "api success", path: "/api/quote", status: http.StatusOK, wantLevel: "INFO", wantLog: true},
		{name: "api failure", path: "/api/quote", status: http.StatusInternalServerError, wantLevel: "ERROR", wantLog: true},
		{name: "client error", path: "/api/nope", status: http.StatusNotFound, wantLevel: "WARN", wantLog: true},
		{name: "static asset", path: "/style.css", status: http.StatusOK, wantLevel: "DEBUG", wantLog: true},
		{name: "operational endpoint", path: "/-/live", status: http.StatusOK, wantLog: false},
		{name: "skipped path", path: "/favicon.ico", status: http.StatusOK, wantLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			buf := captureLogger(engine)
			engine.Use(Logging("/favicon.ico"))
			engine.GET(tt.path, func(c *gin.Context) { c.Status(tt.status) })

			perform(engine, http.MethodGet, tt.path, nil)

			if !tt.wantLog {
				assert.Empty(t, buf.String())
				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "request completed", entry["msg"])
			assert.Equal(t, tt.path, entry["path"])
			assert.InDelta(t, float64(tt.status), entry["status"], 0)
		})
	}
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	buf := captureLogger(engine)
	engine.Use(Recovery())
	engine.GET("/panic", func(*gin.Context) { panic("secret detail") })

	w := perform(engine, http.MethodGet, "/panic", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)
	assert.NotContains(t, w.Body.String(), "secret detail")

	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "secret detail")
}

func TestRecovery_AfterWrite(t *testing.T) {
	engine := gin.New()
	captureLogger(engine)
	engine.Use(Recovery())
	engine.GET("/partial", func(c *gin.Context) {
		c.String(http.StatusOK, "partial")
		panic("late")
	})

	w := perform(engine, http.MethodGet, "/partial", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}

func TestRecovery_NoPanic(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery())
	engine.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "fine") })

	w := perform(engine, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fine", w.Body.String())
}

func TestTimeout(t *testing.T) {
	t.Run("sets deadline", func(t *testing.T) {
		var (
			deadline time.Time
			ok       bool
		)

		engine := gin.New()
		engine.Use(Timeout(time.Second))
		engine.GET("/", func(c *gin.Context) { deadline, ok = c.Request.Context().Deadline() })

		perform(engine, http.MethodGet, "/", nil)

		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
	})

	t.Run("expires", func(t *testing.T) {
		var err error

		engine := gin.New()
		engine.Use(Timeout(10 * time.Millisecond))
		engine.GET("/", func(c *gin.Context) {
			<-c.Request.Context().Done()
			err = c.Request.Context().Err()
		})

		perform(engine, http.MethodGet, "/", nil)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("zero disables", func(t *testing.T) {
		var ok bool

		engine := gin.New()
		engine.Use(Timeout(0))
		engine.GET("/", func(c *gin.Context) { _, ok = c.Request.Context().Deadline() })

		perform(engine, http.MethodGet, "/", nil)

		assert.False(t, ok)
	})
}
