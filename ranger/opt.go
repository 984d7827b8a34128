package ranger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/trailmap"
	"github.com/xy-planning-network/trailmap/http/filerouter"
	"github.com/xy-planning-network/trailmap/http/router"
	"github.com/xy-planning-network/trailmap/logger"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithLogger is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// The defaults New applies are an example of the second.
// They fill in only what no RangerOption set,
// so they wait until every RangerOption has been called.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

func defaultOpts() []RangerOption {
	return []RangerOption{WithConfig(nil), withDefaults()}
}

// WithConfig finalizes cfg and configures the trailmap app with it.
// A nil cfg is loaded with LoadConfig, cf. TRAILMAP_CONFIG.
func WithConfig(cfg *Config) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if cfg == nil {
			var err error
			if cfg, err = LoadConfig(""); err != nil {
				return nil, err
			}
		}

		if err := cfg.Finalize(); err != nil {
			return nil, err
		}

		rng.cfg = cfg
		return nil, nil
	}
}

// WithContext sets the context.Context the web server's requests descend from.
// Canceling ctx stops [*Ranger.Guide].
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.ctx, rng.cancel = context.WithCancel(ctx)
		return nil, nil
	}
}

// WithEnv overrides the Environment the configuration sets.
func WithEnv(env trailmap.Environment) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if err := env.Valid(); err != nil {
			return nil, fmt.Errorf("environment %q: %w", env, err)
		}

		rng.env = env
		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the trailmap app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if l == nil {
			return nil, fmt.Errorf("%w: nil logger", trailmap.ErrNotValid)
		}

		rng.l = l
		l.Debug(fmt.Sprintf("using logger %T", l), nil)

		return nil, nil
	}
}

// WithRouter exposes the provided *router.Router to the trailmap app.
// The route tree, if any, is mounted on it.
func WithRouter(r *router.Router) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if r == nil {
			return nil, fmt.Errorf("%w: nil router", trailmap.ErrNotValid)
		}

		rng.Router = r
		return nil, nil
	}
}

// WithRoutes mounts the route tree rooted at dir, loading its route modules with loader.
//
// An empty dir falls back to the configured routes directory.
// A nil loader loads Lua route modules; cf. package luaroute.
// opts are applied after the configured auto tags, strip mode and verbosity.
func WithRoutes(dir string, loader filerouter.ModuleLoader, opts ...filerouter.Option) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.routes = &routeTree{dir: dir, loader: loader, opts: opts}
		return nil, nil
	}
}

// WithServer exposes the *http.Server to the trailmap app.
// Its Handler is replaced by the app's router when the app is guided.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if s == nil {
			return nil, fmt.Errorf("%w: nil server", trailmap.ErrNotValid)
		}

		rng.srv = s
		return nil, nil
	}
}

// withDefaults constructs a followup filling in whatever no RangerOption set.
func withDefaults() RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		return func() error {
			if rng.env == "" {
				rng.env = rng.cfg.Env()
			}

			if rng.l == nil {
				rng.l = defaultLogger(rng.env, rng.cfg.LogLevel())
			}

			if rng.ctx == nil {
				rng.ctx, rng.cancel = context.WithCancel(context.Background())
			}

			if rng.srv == nil {
				rng.srv = defaultServer(rng.ctx, rng.cfg.Server)
			}

			if rng.Router == nil {
				rng.Router = defaultRouter(rng.env, rng.l, rng.cfg)
			}

			if rng.routes == nil && rng.cfg.Routes.Dir != "" {
				rng.routes = new(routeTree)
			}

			rng.l.Debug(fmt.Sprintf("using env %s", rng.env), nil)
			return nil
		}, nil
	}
}
