package ranger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	// TODO(dlk): configurable env files
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/trailmap"
	"github.com/xy-planning-network/trailmap/http/filerouter"
	"github.com/xy-planning-network/trailmap/http/router"
	"github.com/xy-planning-network/trailmap/logger"
)

// A Ranger manages and exposes all components of a trailmap app to one another.
type Ranger struct {
	*router.Router

	cancel  context.CancelFunc
	cfg     *Config
	closers []io.Closer
	ctx     context.Context
	env     trailmap.Environment
	l       logger.Logger
	routes  *routeTree
	srv     *http.Server

	once        sync.Once
	shutdownErr error
}

// routeTree is the route tree WithRoutes, or the configuration, asks to mount.
type routeTree struct {
	dir    string
	loader filerouter.ModuleLoader
	opts   []filerouter.Option
}

// New constructs a Ranger from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
//
// Once configured, New mounts the route tree, if any, on the Ranger's router.
// Every failure wraps [trailmap.ErrBadConfig].
func New(opts ...RangerOption) (*Ranger, error) {
	r := new(Ranger)
	followups := make([]OptFollowup, 0)

	// NOTE(dlk): calling an option configures the *Ranger under construction.
	// Some options require data from other options.
	// These options, therefore, must delay configuring the *Ranger
	// until either (1) user supplied RangerOptions or (2) default RangerOptions
	// configure the *Ranger first.
	// They return an OptFollowup to be called after the initial set of options are run.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", trailmap.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %w", trailmap.ErrBadConfig, err)
		}
	}

	if err := r.loadRoutes(); err != nil {
		r.cancel()
		r.closeAll()
		return nil, fmt.Errorf("%w: %w", trailmap.ErrBadConfig, err)
	}

	return r, nil
}

// Cancel returns the context.CancelFunc that stops [*Ranger.Guide].
func (r *Ranger) Cancel() context.CancelFunc { return r.cancel }

func (r *Ranger) EmitConfig() *Config           { return r.cfg }
func (r *Ranger) EmitEnv() trailmap.Environment { return r.env }
func (r *Ranger) EmitLogger() logger.Logger     { return r.l }
func (r *Ranger) EmitServer() *http.Server      { return r.srv }

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
// - the context.CancelFunc returned by (*Ranger).Cancel
//
// Guide returns the error the web server failed to listen with, if it did.
func (r *Ranger) Guide() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	listenErr := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		r.srv.Handler = r.Router
		if err := r.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("could not listen: %w", err)
			r.l.Error(err.Error(), nil)
			listenErr <- err
			r.cancel()
		}
	}()

	<-r.ctx.Done()
	err := r.Shutdown()

	select {
	case lerr := <-listenErr:
		return lerr
	default:
		return err
	}
}

// Shutdown shutdowns the web server and releases the route modules' resources.
// Calling Shutdown more than once returns the first call's result.
func (r *Ranger) Shutdown() error {
	r.cancel()
	r.once.Do(func() {
		r.shutdownErr = r.shutdown()
	})

	return r.shutdownErr
}

func (r *Ranger) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	defer r.closeAll()

	err := r.srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}

// loadRoutes mounts the route tree on the router.
func (r *Ranger) loadRoutes() error {
	if r.routes == nil {
		return nil
	}

	dir := r.routes.dir
	if dir == "" {
		dir = r.cfg.Routes.Dir
	}

	if dir == "" {
		return fmt.Errorf("%w: no route directory", trailmap.ErrNotValid)
	}

	loader := r.routes.loader
	if loader == nil {
		loader = defaultLoader(r.l)
	}

	if c, ok := loader.(io.Closer); ok {
		r.closers = append(r.closers, c)
	}

	opts := append([]filerouter.Option{
		filerouter.WithAutoTags(*r.cfg.Routes.AutoTags),
		filerouter.WithLogger(r.l),
		filerouter.WithStripMode(r.cfg.StripMode()),
		filerouter.WithVerbose(r.cfg.Routes.Verbose),
	}, r.routes.opts...)

	_, err := filerouter.LoadRoutes(r.Router, dir, loader, opts...)
	return err
}

func (r *Ranger) closeAll() {
	for _, c := range r.closers {
		if err := c.Close(); err != nil {
			r.l.Error("could not release route modules", &logger.LogContext{Error: err})
		}
	}
	r.closers = nil
}
