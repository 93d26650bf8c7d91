// Package script hosts extraction plugins authored in Lua.
//
// A script declares a global `plugin` table:
//
//	plugin = {
//	    name = "burst",
//	    event_types = {
//	        { logical = "burst", mode = "phased", interactive = true,
//	          dependencies = { "key-down" } },
//	    },
//	    extract = function(kind, payload, target)
//	        if payload.repeat_count and payload.repeat_count > 3 then
//	            return { type = "burst", fields = { count = payload.repeat_count } }
//	        end
//	        return nil
//	    end,
//	}
//
// The host converts the native JSON payload to a Lua table, calls extract,
// and builds the returned event through the same pooling and accumulation
// path the built-in plugins use. Script errors are recovered and reported;
// a failing script never breaks dispatch.
//
// gopher-lua's LState is not goroutine-safe. The host relies on the
// pipeline's single-threaded execution model; all calls into a script
// plugin happen on the dispatch goroutine.
package script
