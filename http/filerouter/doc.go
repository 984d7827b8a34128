/*
Package filerouter mounts route modules found in a directory tree onto a router.

Each directory beneath the tree's root is a path segment,
each qualifying file a route module exporting a [router.Group]:

	api/
		users/
			route.lua        # mounted at /users
			[user_id].lua    # mounted at /users/{user_id}
		documents/
			[document_id]/
				route.lua    # mounted at /documents/{document_id}

[Collect] walks the tree and skips:
  - directories, and everything in them, whose names begin with "__";
  - files whose names begin with "__";
  - files without the route module extension;
  - files whose stem contains "route" without being exactly "route", e.g., "router.lua",
    which are likely misspellings and are logged as warnings.

Every other file is handed to a [ModuleLoader].
A loader returning no Group is logged and skipped;
a loader returning an error stops Collect, since a route tree missing a module
is worse than failing to start.
The resulting entries are sorted by path template, so they mount in the same order every time.

[LoadRoutes] collects and then mounts every entry.
Nothing is mounted unless collection succeeds in full.

Go has no way to import a source file at runtime,
so route modules reach filerouter through a loader:
[Registry] maps files to Groups registered in Go code,
and package luaroute evaluates Lua route modules.
*/
package filerouter
