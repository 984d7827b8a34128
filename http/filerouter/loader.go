package filerouter

//go:generate mockgen -source=loader.go -destination=mocks/loader.go -package=mocks

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/xy-planning-network/trailmap"
	"github.com/xy-planning-network/trailmap/http/router"
)

// DefaultExt is the route module extension used
// when neither WithExt nor the ModuleLoader says otherwise.
const DefaultExt = ".go"

// A ModuleLoader produces the Group a route module exports.
//
// Load returns a nil Group and a nil error when the module at path
// exports no Group; that module is skipped.
// Load returns an error when the module cannot be loaded at all.
type ModuleLoader interface {
	Load(path string) (*router.Group, error)
}

// An Extensioner names the file extension, including the leading dot,
// of the route modules a ModuleLoader understands.
type Extensioner interface {
	Ext() string
}

// A Registry is a ModuleLoader backed by Groups registered in Go code,
// keyed by the slash-separated path of their route module relative to the route tree's root.
//
// The zero value is not usable; construct one with NewRegistry.
type Registry struct {
	ext    string
	groups map[string]*router.Group
	root   string
}

// NewRegistry constructs a Registry for the route tree rooted at root,
// holding route modules with the extension ext, or DefaultExt if ext is empty.
func NewRegistry(root, ext string) *Registry {
	if ext == "" {
		ext = DefaultExt
	}

	return &Registry{
		ext:    ext,
		groups: make(map[string]*router.Group),
		root:   filepath.Clean(root),
	}
}

// Register associates g with the route module at rel, e.g., "users/[user_id].go".
//
// Register returns [trailmap.ErrNotValid] when g is nil
// or rel does not name a route module inside the tree,
// and [trailmap.ErrDuplicatePath] when rel is already registered.
func (reg *Registry) Register(rel string, g *router.Group) error {
	if g == nil {
		return fmt.Errorf("%w: nil group for %s", trailmap.ErrNotValid, rel)
	}

	rel = path.Clean(filepath.ToSlash(rel))
	if path.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, "../") {
		return fmt.Errorf("%w: %s is outside the route tree", trailmap.ErrNotValid, rel)
	}

	if path.Ext(rel) != reg.ext {
		return fmt.Errorf("%w: %s does not have extension %s", trailmap.ErrNotValid, rel, reg.ext)
	}

	if _, ok := reg.groups[rel]; ok {
		return fmt.Errorf("%w: %s already registered", trailmap.ErrDuplicatePath, rel)
	}

	reg.groups[rel] = g
	return nil
}

// Load retrieves a copy of the Group registered for the route module at p.
// The copy's Tags can be appended to without touching the registered Group.
//
// Load implements ModuleLoader.
func (reg *Registry) Load(p string) (*router.Group, error) {
	rel, err := filepath.Rel(reg.root, filepath.Clean(p))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", trailmap.ErrNotValid, err)
	}

	g, ok := reg.groups[filepath.ToSlash(rel)]
	if !ok {
		return nil, nil
	}

	clone := *g
	clone.Tags = append([]string(nil), g.Tags...)
	return &clone, nil
}

// Ext returns the extension of the route modules in the Registry.
//
// Ext implements Extensioner.
func (reg *Registry) Ext() string { return reg.ext }
