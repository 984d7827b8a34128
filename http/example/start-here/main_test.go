package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailmap/ranger"
)

func Test(t *testing.T) {
	t.Setenv(ranger.ConfigEnvVar, "")
	t.Setenv("ENVIRONMENT", "TESTING")
	t.Setenv("LOG_LEVEL", "ERROR")

	rng, err := newRanger()
	require.Nil(t, err)
	defer rng.Shutdown()

	srv := httptest.NewServer(rng)
	defer srv.Close()

	for _, tc := range []struct {
		name     string
		method   string
		input    string
		body     string
		expected int
	}{
		{"root", http.MethodGet, "/", "", http.StatusOK},
		{"users", http.MethodGet, "/users", "", http.StatusOK},
		{"create-user", http.MethodPost, "/users", `{"name":"Ada"}`, http.StatusCreated},
		{"create-user-422", http.MethodPost, "/users", `{"nickname":"Ada"}`, http.StatusUnprocessableEntity},
		{"user", http.MethodGet, "/users/1", "", http.StatusOK},
		{"notes", http.MethodGet, "/users/1/notes", "", http.StatusOK},
		{"health", http.MethodGet, "/_health", "", http.StatusOK},
		{"drafts-404", http.MethodGet, "/__drafts", "", http.StatusNotFound},
		{"method-405", http.MethodDelete, "/users", "", http.StatusMethodNotAllowed},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, srv.URL+tc.input, strings.NewReader(tc.body))
			require.Nil(t, err)
			req.Header.Set("Content-Type", "application/json")

			actual, err := http.DefaultClient.Do(req)
			require.Nil(t, err)
			defer actual.Body.Close()

			require.Equal(t, tc.expected, actual.StatusCode)
		})
	}
}
