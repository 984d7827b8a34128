package luaroute

import (
	"fmt"
	"math"
	"net/http"
	"sort"

	lua "github.com/yuin/gopher-lua"
	json "layeh.com/gopher-json"
)

// Handlers may only answer with final statuses; 1xx responses are written by net/http.
const (
	minStatus = 200
	maxStatus = 599
)

type response struct {
	body    []byte
	headers map[string]string
	status  int
}

// newResponse interprets what a handler returned.
func newResponse(ret lua.LValue) (*response, error) {
	switch v := ret.(type) {
	case *lua.LNilType:
		return &response{status: http.StatusNoContent}, nil
	case lua.LString:
		return &response{body: []byte(v), status: http.StatusOK}, nil
	case *lua.LTable:
		return newTableResponse(v)
	default:
		return nil, fmt.Errorf("handler returned a %s", ret.Type())
	}
}

func newTableResponse(tbl *lua.LTable) (*response, error) {
	res := &response{headers: make(map[string]string), status: http.StatusOK}

	switch status := tbl.RawGetString("status").(type) {
	case *lua.LNilType:
	case lua.LNumber:
		f := float64(status)
		if f != math.Trunc(f) {
			return nil, fmt.Errorf("status %v is not an integer", f)
		}

		res.status = int(f)
		if res.status < minStatus || res.status > maxStatus {
			return nil, fmt.Errorf("status %d out of range [%d, %d]", res.status, minStatus, maxStatus)
		}
	default:
		return nil, fmt.Errorf("status is a %s, not a number", status.Type())
	}

	switch headers := tbl.RawGetString("headers").(type) {
	case *lua.LNilType:
	case *lua.LTable:
		var err error
		headers.ForEach(func(k, v lua.LValue) {
			ks, kok := k.(lua.LString)
			vs, vok := v.(lua.LString)
			if !kok || !vok {
				err = fmt.Errorf("headers must map strings to strings")
				return
			}
			res.headers[string(ks)] = string(vs)
		})
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("headers is a %s, not a table", headers.Type())
	}

	if js := tbl.RawGetString("json"); js != lua.LNil {
		b, err := json.Encode(js)
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}

		res.body = b
		if _, ok := res.headers["Content-Type"]; !ok {
			res.headers["Content-Type"] = "application/json"
		}
		return res, nil
	}

	switch body := tbl.RawGetString("body").(type) {
	case *lua.LNilType:
	case lua.LString:
		res.body = []byte(body)
	default:
		return nil, fmt.Errorf("body is a %s, not a string", body.Type())
	}

	return res, nil
}

func (res *response) write(w http.ResponseWriter) {
	keys := make([]string, 0, len(res.headers))
	for k := range res.headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		w.Header().Set(k, res.headers[k])
	}

	w.WriteHeader(res.status)
	w.Write(res.body)
}
