package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailmap"
	"github.com/xy-planning-network/trailmap/http/middleware"
)

func TestForceHTTPS(t *testing.T) {
	secure := &url.URL{Scheme: "https", Host: "example.com"}

	for _, tc := range []struct {
		name     string
		env      trailmap.Environment
		baseURL  *url.URL
		proto    string
		status   int
		location string
	}{
		{"Development", trailmap.Development, secure, "", http.StatusOK, ""},
		{"Testing", trailmap.Testing, secure, "", http.StatusOK, ""},
		{"HTTP-Base-URL", trailmap.Production, &url.URL{Scheme: "http", Host: "example.com"}, "", http.StatusOK, ""},
		{"No-Base-URL", trailmap.Production, nil, "", http.StatusOK, ""},
		{"Proxied-HTTPS", trailmap.Production, secure, "https", http.StatusOK, ""},
		{"Redirect", trailmap.Production, secure, "http", http.StatusPermanentRedirect, "https://example.com/users/1?page=2"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := httptest.NewRequest(http.MethodGet, "http://internal:3000/users/1?page=2", nil)
			if tc.proto != "" {
				r.Header.Set("X-Forwarded-Proto", tc.proto)
			}
			w := httptest.NewRecorder()

			// Act
			middleware.ForceHTTPS(tc.env, tc.baseURL)(NoopHandler()).ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.status, w.Code)
			require.Equal(t, tc.location, w.Header().Get("Location"))
		})
	}
}
