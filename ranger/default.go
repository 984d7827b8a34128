package ranger

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xy-planning-network/trailmap"
	"github.com/xy-planning-network/trailmap/http/filerouter"
	"github.com/xy-planning-network/trailmap/http/filerouter/luaroute"
	"github.com/xy-planning-network/trailmap/http/middleware"
	"github.com/xy-planning-network/trailmap/http/router"
	"github.com/xy-planning-network/trailmap/logger"
)

const (
	// Config file defaults
	ConfigEnvVar = "TRAILMAP_CONFIG"
	ConfigFile   = "trailmap.toml"

	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// CORS defaults
	corsOriginEnvVar = "CORS_ORIGIN"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"

	// Route tree defaults
	routesDirEnvVar       = "ROUTES_DIR"
	routesAutoTagsEnvVar  = "ROUTES_AUTO_TAGS"
	routesStripModeEnvVar = "ROUTES_STRIP_MODE"
	routesVerboseEnvVar   = "ROUTES_VERBOSE"

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second
	serverRateLimitEnvVar     = "SERVER_RATE_LIMIT"
	serverRateBurstEnvVar     = "SERVER_RATE_BURST"
	DefaultServerRateBurst    = 20
	shutdownTimeout           = 5 * time.Second
)

// defaultLogger constructs the logger.Logger used throughout the app.
func defaultLogger(env trailmap.Environment, level logger.LogLevel) logger.Logger {
	l := logger.NewLogger(logger.WithEnv(env.String()), logger.WithLevel(level))
	l.Debug("setting up app logger", nil)

	return l
}

// defaultRouter constructs a [*router.Router] to be used by the web server.
//
// Every request is assigned a request ID before it is logged.
func defaultRouter(env trailmap.Environment, l logger.Logger, cfg *Config) *router.Router {
	logReq := func(h http.Handler) http.Handler {
		return middleware.Chain(h, middleware.RequestID(), middleware.LogRequest(l))
	}

	var visitors *middleware.Visitors
	if cfg.Server.RateLimit > 0 {
		visitors = middleware.NewVisitors(cfg.Server.RateLimit, cfg.Server.RateBurst)
	}

	var baseURL *url.URL
	if cfg.Server.BaseURL != "" {
		baseURL = cfg.URL()
	}

	r := router.New(env, logReq)
	r.OnEveryRequest(
		middleware.RateLimit(visitors),
		middleware.ForceHTTPS(env, baseURL),
		middleware.InjectIPAddress(),
		middleware.CORS(cfg.Server.CORSOrigin),
	)
	r.HandleNotFound(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	return r
}

// defaultLoader constructs the filerouter.ModuleLoader for a route tree named only by configuration.
// Route modules written in Go cannot be loaded from disk, so these are Lua route modules.
func defaultLoader(l logger.Logger) filerouter.ModuleLoader {
	return luaroute.NewLoader(l)
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context, cfg ServerConfig) *http.Server {
	idle, read, write := cfg.Durations()
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strings.TrimPrefix(cfg.Port, ":")),
		IdleTimeout:  idle,
		ReadTimeout:  read,
		WriteTimeout: write,
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}
