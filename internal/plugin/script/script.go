package script

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/uievent/internal/plugin"
	"github.com/dshills/uievent/internal/synthetic"
)

var (
	// ErrNoPluginTable is returned when a script does not define the
	// global `plugin` table.
	ErrNoPluginTable = errors.New("script does not define a plugin table")

	// ErrNoExtract is returned when the plugin table has no extract
	// function.
	ErrNoExtract = errors.New("plugin table has no extract function")

	// ErrBadEventType is returned when an event_types entry is malformed.
	ErrBadEventType = errors.New("malformed event_types entry")
)

// Plugin hosts one Lua extraction script behind the standard plugin
// contract.
type Plugin struct {
	name string
	acc  plugin.Accumulator
	pool *synthetic.Pools
	log  zerolog.Logger

	state   *lua.LState
	extract lua.LValue

	types map[string]*synthetic.DispatchConfig
	deps  map[synthetic.Kind]bool
}

// Load reads and evaluates a Lua plugin script from a file.
func Load(path string, acc plugin.Accumulator, pool *synthetic.Pools, log zerolog.Logger) (*Plugin, error) {
	L := lua.NewState()
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	p, err := fromState(L, acc, pool, log)
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return p, nil
}

// LoadString evaluates a Lua plugin from source. Used by tests and
// embedded plugins.
func LoadString(src string, acc plugin.Accumulator, pool *synthetic.Pools, log zerolog.Logger) (*Plugin, error) {
	L := lua.NewState()
	if err := L.DoString(src); err != nil {
		L.Close()
		return nil, err
	}
	p, err := fromState(L, acc, pool, log)
	if err != nil {
		L.Close()
		return nil, err
	}
	return p, nil
}

func fromState(L *lua.LState, acc plugin.Accumulator, pool *synthetic.Pools, log zerolog.Logger) (*Plugin, error) {
	tbl, ok := L.GetGlobal("plugin").(*lua.LTable)
	if !ok {
		return nil, ErrNoPluginTable
	}

	name := lua.LVAsString(tbl.RawGetString("name"))
	if name == "" {
		return nil, fmt.Errorf("plugin name missing: %w", ErrNoPluginTable)
	}

	extract := tbl.RawGetString("extract")
	if _, ok := extract.(*lua.LFunction); !ok {
		return nil, ErrNoExtract
	}

	p := &Plugin{
		name:    name,
		acc:     acc,
		pool:    pool,
		log:     log,
		state:   L,
		extract: extract,
		types:   make(map[string]*synthetic.DispatchConfig),
		deps:    make(map[synthetic.Kind]bool),
	}

	typesTbl, ok := tbl.RawGetString("event_types").(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("event_types missing: %w", ErrBadEventType)
	}
	var loadErr error
	typesTbl.ForEach(func(_, v lua.LValue) {
		if loadErr != nil {
			return
		}
		entry, ok := v.(*lua.LTable)
		if !ok {
			loadErr = ErrBadEventType
			return
		}
		loadErr = p.addEventType(entry)
	})
	if loadErr != nil {
		return nil, loadErr
	}
	if len(p.types) == 0 {
		return nil, fmt.Errorf("no event types declared: %w", ErrBadEventType)
	}
	return p, nil
}

func (p *Plugin) addEventType(entry *lua.LTable) error {
	logical := lua.LVAsString(entry.RawGetString("logical"))
	if logical == "" {
		return fmt.Errorf("logical name missing: %w", ErrBadEventType)
	}
	interactive := lua.LVAsBool(entry.RawGetString("interactive"))

	var deps []synthetic.Kind
	if depsTbl, ok := entry.RawGetString("dependencies").(*lua.LTable); ok {
		depsTbl.ForEach(func(_, v lua.LValue) {
			kind := synthetic.Kind(lua.LVAsString(v))
			deps = append(deps, kind)
			p.deps[kind] = true
		})
	}
	if len(deps) == 0 {
		return fmt.Errorf("event type %q has no dependencies: %w", logical, ErrBadEventType)
	}

	var dc *synthetic.DispatchConfig
	switch mode := lua.LVAsString(entry.RawGetString("mode")); mode {
	case "phased", "":
		dc = synthetic.PhasedConfig(logical, interactive, deps...)
	case "direct":
		dc = synthetic.DirectConfig(logical, interactive, deps...)
	default:
		return fmt.Errorf("event type %q has unknown mode %q: %w", logical, mode, ErrBadEventType)
	}
	p.types[logical] = dc
	return nil
}

// Name implements plugin.Plugin.
func (p *Plugin) Name() string { return p.name }

// EventTypes implements plugin.Plugin.
func (p *Plugin) EventTypes() map[string]*synthetic.DispatchConfig { return p.types }

// ExtractEvents calls the script's extract function for native kinds the
// script declared as dependencies. Script errors are recovered and
// reported; the dispatch continues without an event.
func (p *Plugin) ExtractEvents(kind synthetic.Kind, target synthetic.Instance, native []byte, nativeTarget any) *synthetic.Event {
	if !p.deps[kind] {
		return nil
	}

	L := p.state
	L.Push(p.extract)
	L.Push(lua.LString(kind.String()))
	L.Push(payloadToLua(L, native))
	L.Push(lua.LString(fmt.Sprintf("%v", nativeTarget)))
	if err := L.PCall(3, 1, nil); err != nil {
		p.log.Error().
			Err(err).
			Str("plugin", p.name).
			Str("kind", kind.String()).
			Msg("script extract failed")
		return nil
	}
	ret := L.Get(-1)
	L.Pop(1)

	result, ok := ret.(*lua.LTable)
	if !ok {
		return nil
	}
	logical := lua.LVAsString(result.RawGetString("type"))
	dc, ok := p.types[logical]
	if !ok {
		p.log.Warn().
			Str("plugin", p.name).
			Str("type", logical).
			Msg("script returned an undeclared event type")
		return nil
	}

	e := p.pool.Acquire(dc, synthetic.ShapeBase, target, native, nativeTarget)
	if fields, ok := result.RawGetString("fields").(*lua.LTable); ok {
		fields.ForEach(func(k, v lua.LValue) {
			e.SetField(lua.LVAsString(k), luaToGo(v))
		})
	}
	if dc.IsPhased() {
		p.acc.AccumulateTwoPhase(e)
	} else {
		p.acc.AccumulateDirect(e)
	}
	return e
}

// Close shuts down the script's Lua state. The plugin must not be used
// afterward.
func (p *Plugin) Close() {
	p.state.Close()
}
