/*
Package ranger initializes and manages a trailmap app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New].
Mount a route tree with [WithRoutes], or by setting ROUTES_DIR for a tree of Lua route modules.

[*Ranger.Guide] begins a trailmap app's web server.
By default, [*Ranger.Guide] listens on [DefaultHost]:[DefaultPort] (localhost:3000).

Upon calling [*Ranger.Guide], all routes configured up to that point are now active.
Stop that web server with [*Ranger.Shutdown],
call the context.CancelFunc returned by [*Ranger.Cancel],
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures a trailmap app through a TOML file, environment variables,
and the [RangerOption] values passed to [New].
Environment variables override the file; options override both.

The file is read from TRAILMAP_CONFIG, or else trailmap.toml in the working directory, if it exists:

	environment = "DEVELOPMENT"

	[server]
	port = ":8080"
	cors_origin = "https://example.com"

	[routes]
	dir = "api"
	auto_tags = true
	strip_mode = "segment"

	[logging]
	level = "DEBUG"

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - BASE_URL: the base URL the application runs on; replaces HOST & PORT
  - CORS_ORIGIN: the origin allowed to make cross-origin requests; default: none
  - ENVIRONMENT: the environment the application is running in; cf. [trailmap.Environment]
  - HOST: the host the application is running on; default: localhost
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :3000
  - ROUTES_AUTO_TAGS: whether route path templates are appended to tags; default: true
  - ROUTES_DIR: the root directory of the route tree
  - ROUTES_STRIP_MODE: "segment" or "text"; cf. [routepath.StripMode]; default: segment
  - ROUTES_VERBOSE: whether route loading logs at INFO instead of DEBUG; default: false
  - SENTRY_DSN: the DSN errors and panics are reported to
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idiling between requests when using keep-alives; default: 120s
  - SERVER_RATE_BURST: the burst of requests allowed from one IP address; default: 20 when SERVER_RATE_LIMIT is set
  - SERVER_RATE_LIMIT: the requests per second allowed from one IP address; default: unlimited
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - TRAILMAP_CONFIG: the path to the TOML configuration file
*/
package ranger
