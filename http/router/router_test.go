package router_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailmap"
	"github.com/xy-planning-network/trailmap/http/middleware"
	"github.com/xy-planning-network/trailmap/http/router"
)

func echoVars() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prefix, _ := middleware.MountPrefixFromContext(r.Context())
		fmt.Fprintf(w, "%s %v", prefix, mux.Vars(r))
	})
}

func TestJoinPath(t *testing.T) {
	for _, tc := range []struct {
		prefix   string
		path     string
		expected string
	}{
		{"", "", "/"},
		{"/", "", "/"},
		{"/users", "", "/users"},
		{"users", "", "/users"},
		{"/users/", "/{user_id}", "/users/{user_id}"},
		{"/users", "profile", "/users/profile"},
		{"/", "/health", "/health"},
		{"/users", "/", "/users/"},
	} {
		t.Run(tc.prefix+"+"+tc.path, func(t *testing.T) {
			require.Equal(t, tc.expected, router.JoinPath(tc.prefix, tc.path))
		})
	}
}

func TestRouterMount(t *testing.T) {
	// Arrange
	r := router.New(trailmap.Testing, nil)
	users := &router.Group{
		Tags: []string{"users"},
		Routes: []router.Route{
			{Path: "", Method: http.MethodGet, Handler: echoVars()},
		},
	}
	user := &router.Group{
		Routes: []router.Route{
			{Path: "", Method: http.MethodGet, Handler: echoVars()},
			{Path: "/settings", Handler: echoVars()},
		},
	}

	// Act
	r.Mount(users, "/users", users.Tags)
	r.Mount(user, "/users/{user_id}", []string{"users/{user_id}"})
	r.Mount(nil, "/ignored", nil)

	// Assert
	for _, tc := range []struct {
		name   string
		method string
		target string
		status int
		body   string
	}{
		{"Index", http.MethodGet, "/users", http.StatusOK, "/users map[]"},
		{"Param", http.MethodGet, "/users/42", http.StatusOK, "/users/{user_id} map[user_id:42]"},
		{"Any-Method", http.MethodDelete, "/users/42/settings", http.StatusOK, "/users/{user_id} map[user_id:42]"},
		{"Wrong-Method", http.MethodPost, "/users", http.StatusMethodNotAllowed, ""},
		{"Not-Found", http.MethodGet, "/documents", http.StatusNotFound, ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.target, nil))

			require.Equal(t, tc.status, w.Code)
			if tc.body != "" {
				require.Equal(t, tc.body, w.Body.String())
			}
		})
	}

	require.Equal(t, []router.Mounted{
		{Prefix: "/users", Tags: []string{"users"}, Routes: []string{"GET /users"}},
		{
			Prefix: "/users/{user_id}",
			Tags:   []string{"users/{user_id}"},
			Routes: []string{"GET /users/{user_id}", "* /users/{user_id}/settings"},
		},
	}, r.Mounts())
}

func TestRouterMountCopiesTags(t *testing.T) {
	// Arrange
	r := router.New(trailmap.Testing, nil)
	tags := []string{"a"}

	// Act
	r.Mount(&router.Group{}, "/a", tags)
	tags[0] = "changed"

	// Assert
	require.Equal(t, []string{"a"}, r.Mounts()[0].Tags)
}

func TestRouterMiddlewareOrder(t *testing.T) {
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

	r := router.New(trailmap.Testing, mark("log"))
	r.OnEveryRequest(mark("every"))
	g := &router.Group{
		Middlewares: []middleware.Adapter{mark("group")},
		Routes: []router.Route{{
			Method:      http.MethodGet,
			Handler:     http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { order = append(order, "handler") }),
			Middlewares: []middleware.Adapter{mark("route")},
		}},
	}

	// Act
	r.Mount(g, "/", nil)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	require.Equal(t, []string{"log", "every", "group", "route", "handler"}, order)
}

func TestRouterSubrouter(t *testing.T) {
	// Arrange
	r := router.New(trailmap.Testing, nil)
	api := r.Subrouter("/api")
	g := &router.Group{Routes: []router.Route{{Method: http.MethodGet, Handler: echoVars()}}}

	// Act
	api.Mount(g, "/users/{user_id}", nil)

	// Assert
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/7", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "/api/users/{user_id} map[user_id:7]", w.Body.String())
	require.Equal(t, "/api/users/{user_id}", r.Mounts()[0].Prefix)
	require.Equal(t, []string{"GET /api/users/{user_id}"}, api.Mounts()[0].Routes)
}

func TestRouterHandleNotFound(t *testing.T) {
	// Arrange
	r := router.New(trailmap.Testing, nil)
	r.HandleNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	// Act
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)
}
