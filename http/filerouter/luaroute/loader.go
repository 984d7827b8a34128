package luaroute

import (
	"fmt"
	"sync"

	"github.com/xy-planning-network/trailmap"
	"github.com/xy-planning-network/trailmap/http/filerouter"
	"github.com/xy-planning-network/trailmap/http/router"
	"github.com/xy-planning-network/trailmap/logger"
	lua "github.com/yuin/gopher-lua"
	json "layeh.com/gopher-json"
)

// Ext is the extension of Lua route modules.
const Ext = ".lua"

// RouterGlobal is the global a Lua route module assigns its router table to.
const RouterGlobal = "router"

var (
	_ filerouter.ModuleLoader = (*Loader)(nil)
	_ filerouter.Extensioner  = (*Loader)(nil)
)

// A Loader evaluates Lua route modules into Groups.
//
// Every loaded module keeps its own lua.LState alive to serve requests;
// Close releases them. Loading the same file again does not release the earlier state,
// since the Group built from it may still be mounted.
// To reload a route tree, collect it with a new Loader
// and Close the previous one once its Groups are no longer served.
type Loader struct {
	l logger.Logger

	mu      sync.Mutex
	modules []*module
}

// NewLoader constructs a Loader writing handler failures to l.
// A nil l discards them.
func NewLoader(l logger.Logger) *Loader {
	if l == nil {
		l = logger.NewDiscardLogger()
	}

	return &Loader{l: l}
}

// Ext returns Ext.
//
// Ext implements filerouter.Extensioner.
func (ld *Loader) Ext() string { return Ext }

// Load evaluates the Lua file at path and builds a Group from the router table it assigns.
//
// Load returns a nil Group and a nil error if the file assigns no router table.
// Load returns an error if the file cannot be evaluated
// or its router table is malformed, wrapping [trailmap.ErrNotValid] in the latter case.
//
// Load implements filerouter.ModuleLoader.
func (ld *Loader) Load(path string) (*router.Group, error) {
	L := lua.NewState()
	json.Preload(L)

	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("evaluating %s: %w", path, err)
	}

	lv := L.GetGlobal(RouterGlobal)
	if lv == lua.LNil {
		L.Close()
		return nil, nil
	}

	tbl, ok := lv.(*lua.LTable)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("%w: %s: %s is a %s, not a table", trailmap.ErrNotValid, path, RouterGlobal, lv.Type())
	}

	m := &module{l: ld.l, path: path, state: L}
	g, err := m.group(tbl)
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("%w: %s: %s", trailmap.ErrNotValid, path, err)
	}

	ld.mu.Lock()
	ld.modules = append(ld.modules, m)
	ld.mu.Unlock()

	return g, nil
}

// Close releases the Lua state of every module loaded so far.
// Handlers of those modules respond with 503 afterwards.
func (ld *Loader) Close() error {
	ld.mu.Lock()
	defer ld.mu.Unlock()

	for _, m := range ld.modules {
		m.close()
	}
	ld.modules = nil

	return nil
}
