/*
start-here provides a toy example use of trailmap's http stack,
focusing on the basics of:

(1) laying out a route tree of Lua route modules in api/;
(2) constructing a default Ranger that mounts it;
(3) mounting a Group written in Go next to the tree.

Run it from this directory and try:

	curl localhost:3000/users
	curl -X POST -d '{"name":"Ada"}' -H 'Content-Type: application/json' localhost:3000/users
	curl localhost:3000/users/1/notes
*/
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/xy-planning-network/trailmap/http/router"
	"github.com/xy-planning-network/trailmap/ranger"
)

const routesDir = "api"

// health is a Group written in Go, mounted alongside the route tree.
var health = &router.Group{
	Tags: []string{"meta"},
	Routes: []router.Route{{
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "ok")
		}),
	}},
}

func newRanger() (*ranger.Ranger, error) {
	rng, err := ranger.New(ranger.WithRoutes(routesDir, nil))
	if err != nil {
		return nil, err
	}

	rng.Mount(health, "/_health", health.Tags)
	return rng, nil
}

func main() {
	rng, err := newRanger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := rng.Guide(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
