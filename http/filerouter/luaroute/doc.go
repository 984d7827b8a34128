/*
Package luaroute loads route modules written in Lua.

A route module assigns a global table named router:

	router = {
		tags = {"users"},
		routes = {
			{method = "GET", handler = function(req) return {json = {id = req.vars.user_id}} end},
			{method = "POST", path = "/notes", handler = function(req) return {status = 201, body = req.body} end},
		},
	}

A handler receives a request table with method, path, ip, vars, query, header and body fields,
plus json when the request body is JSON.
It returns a string, sent with status 200,
or a table with status, headers and either body or json fields.
Returning nothing responds with 204.

The json module from layeh.com/gopher-json is preloaded: local json = require("json").
*/
package luaroute
