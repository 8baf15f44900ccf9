package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/validated-entities/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/validated-entities/internal/platform/logging"
)

func TestLogging_CompletionLine(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.RequestID(), middleware.CorrelationID(), middleware.Logging(jsonLogger(&logs)))
	r.Post("/api/v1/types/{type}/entities", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/types/User/entities", http.NoBody)
	req.Header.Set(middleware.HeaderRequestID, "req-9")
	serve(r, req)

	entry := findLog(t, logLines(t, &logs), "request completed")
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "req-9", entry["request_id"])
	assert.Equal(t, "req-9", entry["correlation_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/v1/types/User/entities", entry["path"])
	assert.Equal(t, "/api/v1/types/{type}/entities", entry["route"])
	assert.InDelta(t, http.StatusCreated, entry["status"], 0)
	assert.InDelta(t, 2, entry["bytes"], 0)
}

func TestLogging_LevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "INFO"},
		{http.StatusBadRequest, "WARN"},
		{http.StatusNotFound, "WARN"},
		{http.StatusBadGateway, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			h := middleware.Logging(jsonLogger(&logs))(statusHandler(tt.status))
			serve(h, httptest.NewRequest(http.MethodGet, "/x", http.NoBody))

			entry := findLog(t, logLines(t, &logs), "request completed")
			assert.Equal(t, tt.level, entry["level"])
		})
	}
}

func TestLogging_NoWriteCountsAsOK(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	h := middleware.Logging(jsonLogger(&logs))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	serve(h, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	entry := findLog(t, logLines(t, &logs), "request completed")
	assert.InDelta(t, http.StatusOK, entry["status"], 0)
}

func TestLogging_StoresChildLogger(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	h := middleware.RequestID()(middleware.Logging(jsonLogger(&logs))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).InfoContext(r.Context(), "entity rejected")
			w.WriteHeader(http.StatusBadRequest)
		}),
	))

	req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	req.Header.Set(middleware.HeaderRequestID, "req-child")
	serve(h, req)

	entry := findLog(t, logLines(t, &logs), "entity rejected")
	assert.Equal(t, "req-child", entry["request_id"])
}

func TestLogging_DebugHeadersAreRedacted(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	h := middleware.Logging(jsonLogger(&logs))(statusHandler(http.StatusOK))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Authorization", "Bearer secret-token")
	serve(h, req)

	entry := findLog(t, logLines(t, &logs), "request headers")
	assert.Equal(t, "[REDACTED]", entry["Authorization"])
	assert.NotContains(t, logs.String(), "secret-token")
}

func TestLogging_HeadersSkippedAboveDebug(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo}))
	h := middleware.Logging(logger)(statusHandler(http.StatusOK))
	serve(h, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	for _, l := range logLines(t, &logs) {
		require.NotEqual(t, "request headers", l["msg"])
	}
}
