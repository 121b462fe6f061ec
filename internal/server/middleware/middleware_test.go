package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/wardrobe/pkg/logging"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(mark("first"), mark("second"), mark("third"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first", "second", "third", "handler"}, order)
}

func TestLogger(t *testing.T) {
	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/api/v1/items", http.StatusOK},
		{http.MethodPost, "/api/v1/items", http.StatusCreated},
		{http.MethodDelete, "/api/v1/items/Red%20shirt", http.StatusOK},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			h := Logger(&logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.RemoteAddr = "192.168.1.1:12345"
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "HTTP request", entry["message"])
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, req.URL.Path, entry["path"])
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, "192.168.1.1:12345", entry["remote_addr"])
			assert.Contains(t, entry, "duration_ms")
		})
	}
}

func TestLoggerPutsRequestLoggerInContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	h := chimiddleware.RequestID(Logger(&logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info().Msg("inside handler")
	})))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/counts", nil))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var inner map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &inner))
	assert.Equal(t, "inside handler", inner["message"])
	assert.Equal(t, "/api/v1/counts", inner["path"])
	assert.NotEmpty(t, inner["request_id"])
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	h := Recovery(&logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("wardrobe door stuck")
	}))

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/items", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"code":"INTERNAL_ERROR"`)
	assert.Contains(t, buf.String(), "wardrobe door stuck")
	assert.Contains(t, buf.String(), "Panic recovered")
}

func TestRecoveryPassesThrough(t *testing.T) {
	logger := zerolog.Nop()
	h := Recovery(&logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestResponseWriterCapturesStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusTeapot, rw.statusCode)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Same(t, rec, rw.Unwrap())
}

// hijackRecorder is a recorder whose connection can be taken over.
type hijackRecorder struct {
	*httptest.ResponseRecorder
	hijacked bool
}

func (h *hijackRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h.hijacked = true
	server, client := net.Pipe()
	_ = client.Close()
	return server, bufio.NewReadWriter(bufio.NewReader(server), bufio.NewWriter(server)), nil
}

func TestLoggerKeepsWriterHijackable(t *testing.T) {
	logger := zerolog.Nop()
	var ok bool
	h := Logger(&logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		var hj http.Hijacker
		hj, ok = w.(http.Hijacker)
		if !ok {
			return
		}
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		_ = conn.Close()
	}))

	rec := &hijackRecorder{ResponseRecorder: httptest.NewRecorder()}
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/events/ws", nil))

	assert.True(t, ok, "wrapped writer must implement http.Hijacker")
	assert.True(t, rec.hijacked)
}
