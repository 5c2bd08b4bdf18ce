package web

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackpad/internal/platform/health"
)

func newWebRouter(t *testing.T, apiBaseURL string) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h, err := New(apiBaseURL, health.New(), logger)
	require.NoError(t, err)

	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestServesIndex(t *testing.T) {
	router := newWebRouter(t, "http://api:8081")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>stackpad</title>")
}

func TestServesStaticAssets(t *testing.T) {
	router := newWebRouter(t, "http://api:8081")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/styles.css", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "font-family")
}

func TestHealthReturnsExactBody(t *testing.T) {
	router := newWebRouter(t, "http://api:8081")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"status":"ok"}`, rec.Body.String())
}

func TestProxyStripsAPIPrefix(t *testing.T) {
	var gotPath string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = io.WriteString(w, `{"notes":[]}`)
	}))
	defer backend.Close()

	router := newWebRouter(t, backend.URL)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/notes/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/v1/notes/", gotPath)
	assert.JSONEq(t, `{"notes":[]}`, rec.Body.String())
}

func TestProxyErrorBecomesUnavailable(t *testing.T) {
	// Point at a server that is already closed.
	backend := httptest.NewServer(http.NotFoundHandler())
	backend.Close()

	router := newWebRouter(t, backend.URL)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/notes/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "unavailable")
}
