package luaroute

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/trailmap/http/middleware"
	"github.com/xy-planning-network/trailmap/http/router"
	"github.com/xy-planning-network/trailmap/logger"
	lua "github.com/yuin/gopher-lua"
	json "layeh.com/gopher-json"
)

var errClosed = errors.New("lua state closed")

// module is an evaluated Lua route module.
// A lua.LState is not safe for concurrent use, so every handler call holds mu.
type module struct {
	l    logger.Logger
	path string

	mu    sync.Mutex
	state *lua.LState
}

// group reads the router table tbl.
func (m *module) group(tbl *lua.LTable) (*router.Group, error) {
	g := new(router.Group)

	switch tags := tbl.RawGetString("tags").(type) {
	case *lua.LNilType:
	case *lua.LTable:
		for i := 1; i <= tags.Len(); i++ {
			tag, ok := tags.RawGetInt(i).(lua.LString)
			if !ok {
				return nil, fmt.Errorf("tags[%d] is not a string", i)
			}
			g.Tags = append(g.Tags, string(tag))
		}
	default:
		return nil, fmt.Errorf("tags is a %s, not a table", tags.Type())
	}

	routes, ok := tbl.RawGetString("routes").(*lua.LTable)
	if !ok {
		return nil, errors.New("routes is not a table")
	}

	for i := 1; i <= routes.Len(); i++ {
		rt, ok := routes.RawGetInt(i).(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("routes[%d] is not a table", i)
		}

		fn, ok := rt.RawGetString("handler").(*lua.LFunction)
		if !ok {
			return nil, fmt.Errorf("routes[%d].handler is not a function", i)
		}

		route := router.Route{Handler: m.handler(fn)}
		if route.Method, ok = optString(rt, "method"); !ok {
			return nil, fmt.Errorf("routes[%d].method is not a string", i)
		}

		if route.Path, ok = optString(rt, "path"); !ok {
			return nil, fmt.Errorf("routes[%d].path is not a string", i)
		}

		g.Routes = append(g.Routes, route)
	}

	return g, nil
}

// handler calls fn with a request table and writes the response it returns.
func (m *module) handler(fn *lua.LFunction) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			m.fail(w, r, http.StatusBadRequest, err)
			return
		}

		m.mu.Lock()
		defer m.mu.Unlock()

		if m.state == nil {
			m.fail(w, r, http.StatusServiceUnavailable, errClosed)
			return
		}

		req, err := m.request(r, body)
		if err != nil {
			m.fail(w, r, http.StatusBadRequest, err)
			return
		}

		L := m.state
		if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, req); err != nil {
			m.fail(w, r, http.StatusInternalServerError, err)
			return
		}

		ret := L.Get(-1)
		L.Pop(1)

		res, err := newResponse(ret)
		if err != nil {
			m.fail(w, r, http.StatusInternalServerError, err)
			return
		}

		res.write(w)
	})
}

// request builds the table a handler receives for r.
func (m *module) request(r *http.Request, body []byte) (*lua.LTable, error) {
	L := m.state
	req := L.NewTable()
	req.RawSetString("method", lua.LString(r.Method))
	req.RawSetString("path", lua.LString(r.URL.Path))
	req.RawSetString("body", lua.LString(body))

	ip, ok := middleware.IPAddressFromContext(r.Context())
	if !ok {
		ip = middleware.GetIPAddress(r)
	}
	req.RawSetString("ip", lua.LString(ip))

	vars := L.NewTable()
	for k, v := range mux.Vars(r) {
		vars.RawSetString(k, lua.LString(v))
	}
	req.RawSetString("vars", vars)

	query := L.NewTable()
	for k, vs := range r.URL.Query() {
		query.RawSetString(k, lua.LString(vs[0]))
	}
	req.RawSetString("query", query)

	header := L.NewTable()
	for k, vs := range r.Header {
		header.RawSetString(k, lua.LString(vs[0]))
	}
	req.RawSetString("header", header)

	if len(body) > 0 && isJSON(r.Header.Get("Content-Type")) {
		val, err := json.Decode(L, body)
		if err != nil {
			return nil, fmt.Errorf("decoding request body: %w", err)
		}
		req.RawSetString("json", val)
	}

	return req, nil
}

func (m *module) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	m.l.Error("lua route handler failed", &logger.LogContext{
		Data:    map[string]any{"status": status},
		Error:   err,
		File:    m.path,
		Request: r,
	})
	http.Error(w, http.StatusText(status), status)
}

func (m *module) close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != nil {
		m.state.Close()
		m.state = nil
	}
}

// optString reads the string field key of tbl, if set.
func optString(tbl *lua.LTable, key string) (string, bool) {
	switch v := tbl.RawGetString(key).(type) {
	case *lua.LNilType:
		return "", true
	case lua.LString:
		return string(v), true
	default:
		return "", false
	}
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == "application/json"
}
