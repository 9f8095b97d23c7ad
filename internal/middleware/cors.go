package middleware

import "net/http"

// CORS enforces a fixed cross-origin allow-list. Origins are matched
// exactly; requests from any other origin receive no CORS headers and are
// rejected by the browser.
type CORS struct {
	allowed map[string]struct{}
}

// NewCORS creates a CORS middleware for the given allowed origins.
func NewCORS(origins []string) *CORS {
	allowed := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		allowed[origin] = struct{}{}
	}
	return &CORS{allowed: allowed}
}

// Handler wraps next with CORS header handling and preflight short-circuit.
func (c *CORS) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Cached responses differ per requesting origin.
		w.Header().Add("Vary", "Origin")

		if origin := r.Header.Get("Origin"); origin != "" {
			if _, ok := c.allowed[origin]; ok {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
