package filerouter

import (
	"fmt"
	"time"

	"github.com/xy-planning-network/trailmap/http/router"
	"github.com/xy-planning-network/trailmap/logger"
)

// A Mounter registers a Group beneath a prefix, e.g., [*router.Router].
type Mounter interface {
	Mount(g *router.Group, prefix string, tags []string)
}

var _ Mounter = (*router.Router)(nil)

// LoadRoutes collects the route tree rooted at root, cf. Collect,
// and mounts each Entry on m in order, beneath "/" + its path template and with its Group's Tags.
// LoadRoutes returns m for chaining.
//
// If Collect fails, LoadRoutes mounts nothing and returns its error.
func LoadRoutes[M Mounter](m M, root string, loader ModuleLoader, opts ...Option) (M, error) {
	start := time.Now()
	c := newCollector(loader, opts...)
	c.log(fmt.Sprintf("loading routes from %s", root), nil)

	if loader == nil {
		return m, fmt.Errorf("loading routes from %s: %w", root, errNilLoader)
	}

	entries, err := c.collect(root)
	if err != nil {
		return m, err
	}

	for _, e := range entries {
		c.log(fmt.Sprintf("loaded router with path %s", e.Prefix()), &logger.LogContext{
			File: e.File,
			Data: map[string]any{"tags": e.Group.Tags},
		})
		m.Mount(e.Group, e.Prefix(), e.Group.Tags)
	}

	c.log(fmt.Sprintf("routes loaded in %.2fs", time.Since(start).Seconds()), nil)
	return m, nil
}
