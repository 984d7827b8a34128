package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xy-planning-network/trailmap"
	"github.com/xy-planning-network/trailmap/logger"
)

// LogRequest logs the request's method, requested path, response status, and duration
// using the enclosed implementation of logger.Logger.
//
// The query values for [trailmap.MaskedQueryKeys] are replaced with [trailmap.LogMaskVal].
//
// If logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			h.ServeHTTP(sw, r)

			uri := r.URL.Path
			q := r.URL.Query()
			for _, key := range trailmap.MaskedQueryKeys {
				if q.Get(key) != "" {
					q.Set(key, trailmap.LogMaskVal)
				}
			}

			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			data := map[string]any{
				"duration": time.Since(start).String(),
				"status":   sw.status,
			}
			if id, ok := r.Context().Value(trailmap.RequestIDKey).(string); ok {
				data["requestId"] = id
			}

			ls.Info(fmt.Sprintf("%s %s %s", r.RemoteAddr, r.Method, uri), &logger.LogContext{Data: data})
		})
	}
}

// statusWriter remembers the status code a handler writes.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}
