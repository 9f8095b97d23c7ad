package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kavia-common/notes-backend/internal/middleware"
	"github.com/stretchr/testify/assert"
)

var testOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

func newCORSHandler() http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return middleware.NewCORS(testOrigins).Handler(next)
}

func TestCORS_AllowedOrigin(t *testing.T) {
	for _, origin := range testOrigins {
		req := httptest.NewRequest(http.MethodGet, "/notes", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()

		newCORSHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w := httptest.NewRecorder()

	newCORSHandler().ServeHTTP(w, req)

	// No CORS headers: the browser rejects the response.
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_PreflightShortCircuit(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/notes", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	middleware.NewCORS(testOrigins).Handler(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, called, "preflight must not reach the wrapped handler")
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestCORS_VaryOriginAlwaysSet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	w := httptest.NewRecorder()

	newCORSHandler().ServeHTTP(w, req)

	assert.Equal(t, "Origin", w.Header().Get("Vary"))
}
