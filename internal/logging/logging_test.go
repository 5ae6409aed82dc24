package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, false)

	logger.WithFields(map[string]any{"email": "alice@example.com"}).Info("hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "hello", lines[0]["msg"])
	require.Equal(t, "alice@example.com", lines[0]["email"])
}

func TestGetLoggerFromContext(t *testing.T) {
	logger := NewDiscardLogger()
	ctx := logger.WithContext(context.Background())

	require.Same(t, logger, GetLoggerFromContext(ctx))
	require.NotNil(t, GetLoggerFromContext(context.Background()), "should fall back to a default logger")
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success is info", http.StatusOK, "INFO"},
		{"client error is warn", http.StatusNotFound, "WARN"},
		{"server error is error", http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, false)

			var sawLogger bool
			handler := middleware.RequestID(RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, sawLogger = r.Context().Value(LoggerContextKey).(*Logger)
				w.WriteHeader(tt.status)
			})))

			req := httptest.NewRequest(http.MethodGet, "/myprofile?name=Alice", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.True(t, sawLogger, "handler should receive request-scoped logger")

			lines := decodeLines(t, &buf)
			require.NotEmpty(t, lines)
			last := lines[len(lines)-1]
			require.Equal(t, "request completed", last["msg"])
			require.Equal(t, tt.wantLevel, last["level"])
			require.Equal(t, float64(tt.status), last["status"])
			require.Equal(t, "/myprofile", last["path"])
			require.NotEmpty(t, last["request_id"])
		})
	}
}
