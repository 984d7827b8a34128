package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xy-planning-network/trailmap"
)

// RequestID adds a uuid to the request context under [trailmap.RequestIDKey]
// and echoes it back in the X-Request-Id response header.
//
// A request arriving with a valid UUID in its X-Request-Id header keeps that UUID.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set("X-Request-Id", id)
			ctx := context.WithValue(r.Context(), trailmap.RequestIDKey, id)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
