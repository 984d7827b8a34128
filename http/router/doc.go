/*
Package router defines how a trailmap app routes HTTP requests.

[*Router] is a thin wrapper around [mux.Router].
It registers [Route] values, each a path, an HTTP method, and an [http.Handler],
and calls any middlewares added to the Route before the handler.

Routes are often registered in logically associated sets.
A [Group] is such a set: the Routes a single route module exports,
along with the tags describing them.
[*Router.Mount] registers a Group beneath a path prefix,
and remembers what it mounted so the route table can be listed later with [*Router.Mounts].

Paths are gorilla/mux templates, so "{user_id}" in a prefix or Route path
names a variable retrievable with [mux.Vars].
*/
package router
