package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

// RequestIDKey holds the request id in the request context.
const RequestIDKey contextKey = "request_id"

type RequestIDMiddleware struct{}

func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// RequestID tags every request with a fresh uuid, exposed to handlers via
// the context and to clients via the X-Request-Id header.
func (m *RequestIDMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := uuid.NewString()

		ctx := context.WithValue(r.Context(), RequestIDKey, requestId)
		w.Header().Set("X-Request-Id", requestId)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
