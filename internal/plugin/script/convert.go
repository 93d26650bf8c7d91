package script

import (
	"github.com/tidwall/gjson"
	lua "github.com/yuin/gopher-lua"
)

// payloadToLua converts a native JSON payload to a Lua table.
func payloadToLua(L *lua.LState, payload []byte) *lua.LTable {
	parsed := gjson.ParseBytes(payload)
	if !parsed.IsObject() {
		return L.NewTable()
	}
	v := jsonToLua(L, parsed)
	if tbl, ok := v.(*lua.LTable); ok {
		return tbl
	}
	return L.NewTable()
}

func jsonToLua(L *lua.LState, r gjson.Result) lua.LValue {
	switch {
	case r.IsObject():
		tbl := L.NewTable()
		r.ForEach(func(key, value gjson.Result) bool {
			tbl.RawSetString(key.String(), jsonToLua(L, value))
			return true
		})
		return tbl
	case r.IsArray():
		tbl := L.NewTable()
		for _, elem := range r.Array() {
			tbl.Append(jsonToLua(L, elem))
		}
		return tbl
	case r.Type == gjson.String:
		return lua.LString(r.String())
	case r.Type == gjson.Number:
		return lua.LNumber(r.Float())
	case r.Type == gjson.True:
		return lua.LTrue
	case r.Type == gjson.False:
		return lua.LFalse
	default:
		return lua.LNil
	}
}

// luaToGo converts a Lua value to a plain Go value for event fields.
func luaToGo(v lua.LValue) any {
	switch val := v.(type) {
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		return float64(val)
	case lua.LString:
		return string(val)
	case *lua.LTable:
		// Array-like tables become slices, everything else maps.
		if val.Len() > 0 {
			out := make([]any, 0, val.Len())
			for i := 1; i <= val.Len(); i++ {
				out = append(out, luaToGo(val.RawGetInt(i)))
			}
			return out
		}
		out := make(map[string]any)
		val.ForEach(func(k, v lua.LValue) {
			out[lua.LVAsString(k)] = luaToGo(v)
		})
		return out
	default:
		return nil
	}
}
