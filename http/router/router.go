package router

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/trailmap"
	"github.com/xy-planning-network/trailmap/http/middleware"
)

// A Route maps a path and HTTP method to an [http.Handler].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
//
// An empty Method matches any HTTP method.
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []middleware.Adapter
}

// A Group is a set of Routes mounted together beneath one prefix.
// Route paths in a Group are relative to that prefix.
type Group struct {
	Tags        []string
	Routes      []Route
	Middlewares []middleware.Adapter
}

// A Mounted records a Group the Router registered.
type Mounted struct {
	Prefix string
	Tags   []string

	// Routes lists "<METHOD> <path>" for every Route in the Group,
	// with "*" standing in for an empty Method.
	Routes []string
}

// Router routes requests to the Routes registered on it.
type Router struct {
	Env           trailmap.Environment
	base          string
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	mounts        *[]Mounted
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
// logReq wraps every Route and the not found handler.
func New(env trailmap.Environment, logReq middleware.Adapter) *Router {
	if logReq == nil {
		logReq = middleware.NoopAdapter
	}

	return &Router{
		Env:    env,
		logReq: logReq,
		mounts: new([]Mounted),
		r:      mux.NewRouter(),
	}
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.Handler] as the default handler
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.Handler) {
	r.r.NotFoundHandler = middleware.Chain(
		handler,
		r.logReq,
		middleware.ReportPanic(r.Env),
	)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := []middleware.Adapter{r.logReq, middleware.ReportPanic(r.Env)}
		mws = append(mws, r.everyReqStack...)
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)

		mr := r.r.Handle(route.Path, middleware.Chain(route.Handler, mws...))
		if route.Method != "" {
			mr.Methods(route.Method)
		}
	}
}

// Mount registers every Route in g beneath prefix.
// tags are recorded alongside the Group and reported by Mounts.
//
// Each request handled by g carries prefix in its context,
// cf. [middleware.MountPrefixFromContext].
func (r *Router) Mount(g *Group, prefix string, tags []string) {
	if g == nil {
		return
	}

	m := Mounted{Prefix: r.fullPath(JoinPath(prefix, "")), Tags: append([]string(nil), tags...)}
	routes := make([]Route, len(g.Routes))
	for i, route := range g.Routes {
		route.Path = JoinPath(prefix, route.Path)
		routes[i] = route

		method := route.Method
		if method == "" {
			method = "*"
		}
		m.Routes = append(m.Routes, method+" "+r.fullPath(route.Path))
	}

	mws := append([]middleware.Adapter{middleware.MountPrefix(m.Prefix)}, g.Middlewares...)
	r.HandleRoutes(routes, mws...)
	*r.mounts = append(*r.mounts, m)
}

// Mounts lists every Group mounted so far, in the order they were mounted.
func (r *Router) Mounts() []Mounted {
	return append([]Mounted(nil), *r.mounts...)
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
// Only Routes registered afterwards pick them up.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
// Groups mounted on the Subrouter are listed by the parent's Mounts, too.
//
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/users
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		Env:           r.Env,
		base:          r.fullPath(JoinPath(prefix, "")),
		everyReqStack: r.everyReqStack,
		logReq:        r.logReq,
		mounts:        r.mounts,
		r:             r.r.PathPrefix(prefix).Subrouter(),
	}
}

// fullPath prepends the prefix of every Subrouter leading to r.
func (r *Router) fullPath(path string) string {
	if r.base == "" {
		return path
	}

	return JoinPath(r.base, path)
}

// JoinPath appends path to prefix, ensuring the result begins with exactly one "/"
// and that the two are separated by exactly one "/".
// An empty path yields prefix alone.
func JoinPath(prefix, path string) string {
	joined := strings.TrimRight(prefix, "/")
	if path != "" {
		joined += "/" + strings.TrimLeft(path, "/")
	}

	if !strings.HasPrefix(joined, "/") {
		joined = "/" + joined
	}

	return joined
}
