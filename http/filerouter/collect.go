package filerouter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xy-planning-network/trailmap"
	"github.com/xy-planning-network/trailmap/http/routepath"
	"github.com/xy-planning-network/trailmap/http/router"
	"github.com/xy-planning-network/trailmap/logger"
)

// SkipPrefix marks directories and files Collect passes over.
const SkipPrefix = "__"

var errNilLoader = fmt.Errorf("%w: nil ModuleLoader", trailmap.ErrNotValid)

// A RouteFile is a file found while walking a route tree.
type RouteFile struct {
	// Path is the file's path, rooted the same way as the tree's root.
	Path string

	// Segments are the names of the directories between the tree's root
	// and the directory holding the file.
	Segments []string

	// Name is the file's base name.
	Name string

	// Stem is Name without its extension.
	Stem string
}

// An Entry is a route module resolved to the path template it mounts at.
type Entry struct {
	// Path is the path template, without a leading "/".
	Path string

	// Group is what the route module exports.
	Group *router.Group

	// Tag is the tag derived from Path, or empty if auto tags are off.
	Tag string

	// File is the route module's path.
	File string
}

// Prefix is the prefix the Entry mounts at.
func (e Entry) Prefix() string { return "/" + e.Path }

type collector struct {
	autoTags bool
	ext      string
	l        logger.Logger
	loader   ModuleLoader
	mode     routepath.StripMode
	verbose  bool
}

func newCollector(loader ModuleLoader, opts ...Option) *collector {
	c := &collector{
		autoTags: true,
		l:        logger.NewLogger(logger.WithLevel(logger.LogLevelWarn)),
		loader:   loader,
		mode:     routepath.StripSegment,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.ext == "" {
		c.ext = DefaultExt
		if e, ok := loader.(Extensioner); ok && e.Ext() != "" {
			c.ext = e.Ext()
		}
	}

	return c
}

// Collect walks the route tree rooted at root, loads every qualifying route module with loader,
// and returns the resulting Entries sorted by path template.
//
// With auto tags on, the default, each Entry's Tag is appended to its Group's Tags.
//
// Collect returns:
//   - [trailmap.ErrNotExist] if root does not exist;
//   - [trailmap.ErrNotValid] if root is not a directory or loader is nil;
//   - [trailmap.ErrDuplicatePath] if two route modules resolve to the same path template;
//   - any error loader returns, wrapped with the route module's path.
func Collect(root string, loader ModuleLoader, opts ...Option) ([]Entry, error) {
	if loader == nil {
		return nil, errNilLoader
	}

	return newCollector(loader, opts...).collect(root)
}

func (c *collector) collect(root string) ([]Entry, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: route directory %s: %s", trailmap.ErrNotExist, root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: route directory %s is not a directory", trailmap.ErrNotValid, root)
	}

	rootName := filepath.Base(root)
	seen := make(map[string]string)
	var entries []Entry

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), SkipPrefix) {
				c.log("skipping directory", &logger.LogContext{File: path})
				return fs.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		file, err := newRouteFile(root, path)
		if err != nil {
			return err
		}

		if c.skip(file) {
			return nil
		}

		group, err := c.loader.Load(path)
		if err != nil {
			return fmt.Errorf("loading route module %s: %w", path, err)
		}

		if group == nil {
			c.log("route module does not export a router", &logger.LogContext{File: path})
			return nil
		}

		template := routepath.ResolveWith(c.mode, rootName, file.Segments, file.Stem)
		if prev, ok := seen[template]; ok {
			return fmt.Errorf("%w: %s and %s both mount at /%s", trailmap.ErrDuplicatePath, prev, path, template)
		}
		seen[template] = path

		entry := Entry{Path: template, Group: group, File: path}
		if c.autoTags {
			entry.Tag = routepath.Tag(c.mode, rootName, template)
		}

		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Groups are only tagged once the whole tree has loaded.
	if c.autoTags {
		for _, e := range entries {
			e.Group.Tags = append(e.Group.Tags, e.Tag)
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

// skip asserts whether file is passed over instead of loaded.
func (c *collector) skip(file RouteFile) bool {
	if strings.HasPrefix(file.Name, SkipPrefix) {
		return true
	}

	if filepath.Ext(file.Name) != c.ext {
		return true
	}

	if strings.Contains(file.Stem, routepath.IndexStem) && file.Stem != routepath.IndexStem {
		c.l.Warn("skipping possibly misspelled route file", &logger.LogContext{File: file.Path})
		return true
	}

	return false
}

// log writes a diagnostic at INFO when verbose and at DEBUG otherwise.
func (c *collector) log(msg string, ctx *logger.LogContext) {
	if c.verbose {
		c.l.Info(msg, ctx)
		return
	}

	c.l.Debug(msg, ctx)
}

func newRouteFile(root, path string) (RouteFile, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return RouteFile{}, fmt.Errorf("%w: %s", trailmap.ErrUnexpected, err)
	}

	var segments []string
	if dir := filepath.Dir(rel); dir != "." {
		segments = strings.Split(filepath.ToSlash(dir), "/")
	}

	name := filepath.Base(path)
	return RouteFile{
		Path:     path,
		Segments: segments,
		Name:     name,
		Stem:     strings.TrimSuffix(name, filepath.Ext(name)),
	}, nil
}
