package selection

import (
	"github.com/tidwall/gjson"

	"github.com/dshills/uievent/internal/plugin"
	"github.com/dshills/uievent/internal/synthetic"
)

// PluginName is the selection plugin's injection name.
const PluginName = "selection"

// logicalName is the single logical event this plugin produces.
const logicalName = "select"

// Config configures the selection plugin.
type Config struct {
	// Strategy captures and compares selection snapshots. Nil selects
	// the default caret-range strategy.
	Strategy Strategy

	// NativeSelectionEvents enables the native selection-changed path.
	// Legacy engines that misreport it set this to false; key events
	// still drive emission.
	NativeSelectionEvents bool

	// Editable decides whether a focus-in target is text-editable. Nil
	// reads the payload's "editable" flag.
	Editable func(native []byte, nativeTarget any) bool
}

// DefaultConfig returns the configuration used on current engines.
func DefaultConfig() Config {
	return Config{
		Strategy:              DefaultStrategy(),
		NativeSelectionEvents: true,
	}
}

// Plugin tracks focus, pointer, and selection state across native events
// and emits "select" when the focused element's selection changes.
type Plugin struct {
	acc  plugin.Accumulator
	pool *synthetic.Pools
	cfg  Config

	types map[string]*synthetic.DispatchConfig
	dc    *synthetic.DispatchConfig

	// Cross-event state. Mutated only inside ExtractEvents; safe under
	// the single-threaded execution model.
	focused       synthetic.Instance
	focusedNative any
	focusedID     string
	lastSnapshot  any
	haveSnapshot  bool
	pressed       bool
}

// New creates the selection plugin.
func New(cfg Config, acc plugin.Accumulator, pool *synthetic.Pools) *Plugin {
	if cfg.Strategy == nil {
		cfg.Strategy = DefaultStrategy()
	}
	dc := synthetic.PhasedConfig(logicalName, true,
		synthetic.KindFocusIn,
		synthetic.KindFocusOut,
		synthetic.KindPointerDown,
		synthetic.KindPointerUp,
		synthetic.KindContextMenu,
		synthetic.KindSelectionChange,
		synthetic.KindKeyDown,
		synthetic.KindKeyUp,
	)
	return &Plugin{
		acc:   acc,
		pool:  pool,
		cfg:   cfg,
		dc:    dc,
		types: map[string]*synthetic.DispatchConfig{logicalName: dc},
	}
}

// Name implements plugin.Plugin.
func (p *Plugin) Name() string { return PluginName }

// EventTypes implements plugin.Plugin.
func (p *Plugin) EventTypes() map[string]*synthetic.DispatchConfig { return p.types }

// ExtractEvents reacts to the five native kind groups driving selection
// tracking. Every other kind is ignored.
func (p *Plugin) ExtractEvents(kind synthetic.Kind, target synthetic.Instance, native []byte, nativeTarget any) *synthetic.Event {
	switch kind {
	case synthetic.KindFocusIn:
		if p.editable(native, nativeTarget) {
			p.focused = target
			p.focusedNative = nativeTarget
			p.focusedID = gjson.GetBytes(native, "activeElement").String()
			// Reset the baseline to the empty snapshot so any selection
			// the user establishes afterward counts as changed.
			p.lastSnapshot = p.cfg.Strategy.Snapshot(nil, nativeTarget)
			p.haveSnapshot = true
		}
		return nil

	case synthetic.KindFocusOut:
		p.focused = nil
		p.focusedNative = nil
		p.focusedID = ""
		p.lastSnapshot = nil
		p.haveSnapshot = false
		return nil

	case synthetic.KindPointerDown:
		// Suppress emission while a drag-select is in progress.
		p.pressed = true
		return nil

	case synthetic.KindPointerUp, synthetic.KindContextMenu:
		p.pressed = false
		return p.attemptEmit(native)

	case synthetic.KindSelectionChange:
		if !p.cfg.NativeSelectionEvents {
			return nil
		}
		return p.attemptEmit(native)

	case synthetic.KindKeyDown, synthetic.KindKeyUp:
		return p.attemptEmit(native)
	}
	return nil
}

// attemptEmit emits one "select" event if the focused element's selection
// structurally changed since the last snapshot.
func (p *Plugin) attemptEmit(native []byte) *synthetic.Event {
	if p.pressed || p.focused == nil {
		return nil
	}
	// The platform focus may have moved without a focus-out we track
	// (e.g. focus into unmanaged chrome).
	if active := gjson.GetBytes(native, "activeElement"); active.Exists() && active.String() != p.focusedID {
		return nil
	}
	// Skip the snapshot work entirely when nobody listens for "select".
	if !p.acc.HasAnyListenerForDependencies(logicalName, nil) {
		return nil
	}

	snap := p.cfg.Strategy.Snapshot(native, p.focusedNative)
	if p.haveSnapshot && p.cfg.Strategy.Equal(p.lastSnapshot, snap) {
		return nil
	}
	p.lastSnapshot = snap
	p.haveSnapshot = true

	e := p.pool.Acquire(p.dc, synthetic.ShapeSelect, p.focused, native, p.focusedNative)
	p.acc.AccumulateTwoPhase(e)
	return e
}

func (p *Plugin) editable(native []byte, nativeTarget any) bool {
	if p.cfg.Editable != nil {
		return p.cfg.Editable(native, nativeTarget)
	}
	return gjson.GetBytes(native, "editable").Bool()
}
