/*
Package routepath translates where a route module sits in a directory tree
into the URL path template it is mounted at.

Directories map to path segments and file stems add a trailing segment:

	api/users/route.lua                  => users
	api/users/[user_id].lua              => users/{user_id}
	api/users/[user_id]/profile.lua      => users/{user_id}/profile
	api/documents/[document_id]/route.lua => documents/{document_id}

A stem of exactly "route" is the index route for its directory.
Names wrapped in square brackets become path parameters in curly braces,
the syntax gorilla/mux understands.

Templates never begin with "/"; whoever mounts the route prepends it.
Nothing in this package touches the filesystem.
*/
package routepath
