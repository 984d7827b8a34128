package filerouter

import (
	"github.com/xy-planning-network/trailmap/http/routepath"
	"github.com/xy-planning-network/trailmap/logger"
)

// An Option configures how Collect and LoadRoutes treat a route tree.
type Option func(*collector)

// WithAutoTags sets whether each Group's path template is appended to its tags.
// Auto tags are on by default.
func WithAutoTags(on bool) Option {
	return func(c *collector) {
		c.autoTags = on
	}
}

// WithExt sets the extension, including the leading dot, route modules must have.
// Without it, the ModuleLoader's extension is used if it is an Extensioner,
// otherwise DefaultExt.
func WithExt(ext string) Option {
	return func(c *collector) {
		c.ext = ext
	}
}

// WithLogger sets the logger.Logger diagnostics are written to.
func WithLogger(l logger.Logger) Option {
	return func(c *collector) {
		if l != nil {
			c.l = l
		}
	}
}

// WithStripMode sets how the root directory's name is removed from path templates.
// The default is routepath.StripSegment.
func WithStripMode(mode routepath.StripMode) Option {
	return func(c *collector) {
		c.mode = mode
	}
}

// WithVerbose raises diagnostics about loading route modules from DEBUG to INFO.
// It changes nothing else.
func WithVerbose(on bool) Option {
	return func(c *collector) {
		c.verbose = on
	}
}
