package middleware

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/trailmap"
)

// MountPrefix stashes the prefix a route group was mounted at
// in the request context under [trailmap.MountPrefixKey].
func MountPrefix(prefix string) Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), trailmap.MountPrefixKey, prefix)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MountPrefixFromContext retrieves the prefix stashed by MountPrefix, if any.
func MountPrefixFromContext(ctx context.Context) (string, bool) {
	prefix, ok := ctx.Value(trailmap.MountPrefixKey).(string)
	return prefix, ok
}
