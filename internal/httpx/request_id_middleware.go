package httpx

import (
	"net/http"

	"github.com/google/uuid"
)

// requestIDHeader is echoed on every response so callers can correlate
// API responses with the access log.
const requestIDHeader = "X-Request-Id"

// RequestIDMiddleware tags each request with an ID. A caller-supplied
// header wins, so traces started by an upstream proxy stay intact.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ContextWithRequestID(r.Context(), id)))
	})
}
