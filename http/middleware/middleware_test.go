package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailmap/http/middleware"
)

func NoopHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
}

func TestChain(t *testing.T) {
	// Arrange
	var order []string
	mark := func(name string) middleware.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				h.ServeHTTP(w, r)
			})
		}
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	// Act
	middleware.Chain(handler, mark("first"), nil, mark("second")).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestMountPrefix(t *testing.T) {
	// Arrange
	var actual string
	var ok bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actual, ok = middleware.MountPrefixFromContext(r.Context())
	})

	// Act
	middleware.MountPrefix("/users/{user_id}")(h).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/1", nil))

	// Assert
	require.True(t, ok)
	require.Equal(t, "/users/{user_id}", actual)

	// Act
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/1", nil))

	// Assert
	require.False(t, ok)
}

func TestCORS(t *testing.T) {
	// Arrange + Act
	actual := middleware.CORS("")

	// Assert
	require.NotNil(t, actual)

	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/users", nil)
	r.Header.Set("Origin", "https://example.com")

	// Act
	middleware.CORS("https://example.com")(NoopHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestReportPanicDevelopment(t *testing.T) {
	// Arrange
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("oops") })

	// Act
	wrapped := middleware.ReportPanic("DEVELOPMENT")(h)

	// Assert
	require.Panics(t, func() {
		wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestReportPanicProduction(t *testing.T) {
	// Arrange
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("oops") })

	// Act
	wrapped := middleware.ReportPanic("PRODUCTION")(h)

	// Assert
	require.NotPanics(t, func() {
		wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
