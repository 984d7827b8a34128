package middleware

import (
	"net/http"
	"net/url"

	"github.com/xy-planning-network/trailmap"
)

// ForceHTTPS redirects HTTP requests to HTTPS
// when baseURL is served over HTTPS and the environment is neither development nor testing.
//
// The "X-Forwarded-Proto" is used to check whether HTTP was requested due to a trailmap app
// running behind a proxy.
func ForceHTTPS(env trailmap.Environment, baseURL *url.URL) Adapter {
	if env.IsDevelopment() || env.IsTesting() || baseURL == nil || baseURL.Scheme != "https" {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				handler.ServeHTTP(w, r)
				return
			}

			u := *r.URL
			u.Scheme = "https"
			u.Host = baseURL.Host

			http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
		})
	}
}
