package middleware

import (
	"encoding/json"
	"net/http"
)

// BodyLimitMiddleware refuses oversized request bodies before any handler
// logic runs. Requests with a declared Content-Length above the limit are
// rejected outright; everything else gets a capped body reader.
type BodyLimitMiddleware struct {
	limit int64
}

func NewBodyLimitMiddleware(limit int64) *BodyLimitMiddleware {
	return &BodyLimitMiddleware{
		limit: limit,
	}
}

func (m *BodyLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > m.limit {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"message": "Request body too large",
			})
			return
		}

		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, m.limit)
		}

		next.ServeHTTP(w, r)
	})
}
