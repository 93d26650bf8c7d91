package dispatch

import (
	"github.com/rs/zerolog"

	"github.com/dshills/uievent/internal/registry"
	"github.com/dshills/uievent/internal/synthetic"
	"github.com/dshills/uievent/internal/tree"
)

// Pipeline owns the registry, the tree adapter, and the event pools, and
// exposes the single host-facing dispatch entry point. It implements the
// plugin.Accumulator contract so plugins can attach listener chains to the
// events they extract.
type Pipeline struct {
	registry *registry.Registry
	adapter  tree.Adapter
	pools    *synthetic.Pools
	log      zerolog.Logger
}

// New creates a pipeline. The adapter may be injected later with
// SetAdapter, but must be present before the first Dispatch call.
func New(reg *registry.Registry, adapter tree.Adapter, pools *synthetic.Pools, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		registry: reg,
		adapter:  adapter,
		pools:    pools,
		log:      log,
	}
}

// SetAdapter injects the tree adapter. Required before the first dispatch.
func (p *Pipeline) SetAdapter(a tree.Adapter) { p.adapter = a }

// Pools returns the pipeline's per-shape event pools.
func (p *Pipeline) Pools() *synthetic.Pools { return p.pools }

// Registry returns the pipeline's plugin registry.
func (p *Pipeline) Registry() *registry.Registry { return p.registry }

// Dispatch feeds one native event through the pipeline: every plugin runs
// in the fixed injected order, every extracted synthetic event is
// dispatched through its accumulated chains, and every non-persistent
// event of this batch is released afterward. Listener panics propagate to
// the caller; batch release still runs.
func (p *Pipeline) Dispatch(kind synthetic.Kind, native []byte, nativeTarget any) error {
	if p.adapter == nil {
		return ErrAdapterNotInjected
	}
	if p.registry == nil {
		return ErrRegistryNotSet
	}

	target := p.adapter.InstanceFromNode(nativeTarget)

	var batch []*synthetic.Event
	defer func() {
		for _, e := range batch {
			p.pools.Release(e)
		}
	}()

	for _, plug := range p.registry.Plugins() {
		if e := plug.ExtractEvents(kind, target, native, nativeTarget); e != nil {
			batch = append(batch, e)
		}
	}

	p.log.Debug().
		Str("kind", kind.String()).
		Int("extracted", len(batch)).
		Msg("dispatch")

	for _, e := range batch {
		p.invoke(e)
	}
	return nil
}

// invoke runs one event's accumulated chains in phase order.
func (p *Pipeline) invoke(e *synthetic.Event) {
	defer func() { e.CurrentTarget = nil }()

	if e.Config != nil && e.Config.IsPhased() {
		for _, entry := range e.Capture {
			if e.PropagationStopped() {
				return
			}
			e.CurrentTarget = entry.Instance
			entry.Handler(e)
		}
		for _, entry := range e.Bubble {
			if e.PropagationStopped() {
				return
			}
			e.CurrentTarget = entry.Instance
			entry.Handler(e)
		}
		return
	}

	for _, entry := range e.Direct {
		if e.PropagationStopped() {
			return
		}
		e.CurrentTarget = entry.Instance
		entry.Handler(e)
	}
}

// AccumulateTwoPhase walks the tree upward from the event's target and
// attaches the capture chain in root-to-target order and the bubble chain
// in target-to-root order. Nodes without the relevant handler are skipped.
// Administratively disabled nodes are skipped for bubble-phase dispatch of
// interactive events but still receive capture. Building a chain never
// invokes a handler.
func (p *Pipeline) AccumulateTwoPhase(e *synthetic.Event) {
	cfg := e.Config
	if cfg == nil || cfg.Phased == nil || p.adapter == nil {
		return
	}

	path := p.ancestorPath(e.Target)

	// Capture: root to target.
	for i := len(path) - 1; i >= 0; i-- {
		inst := path[i]
		if h := p.adapter.ListenerFor(inst, cfg.Phased.Captured); h != nil {
			e.Capture = append(e.Capture, synthetic.ChainEntry{Handler: h, Instance: inst})
		}
	}

	// Bubble: target to root.
	for _, inst := range path {
		if cfg.Interactive && p.adapter.IsDisabled(inst) {
			continue
		}
		if h := p.adapter.ListenerFor(inst, cfg.Phased.Bubbled); h != nil {
			e.Bubble = append(e.Bubble, synthetic.ChainEntry{Handler: h, Instance: inst})
		}
	}
}

// AccumulateDirect attaches the single unphased listener set along the
// ancestor path for a non-bubbling event.
func (p *Pipeline) AccumulateDirect(e *synthetic.Event) {
	cfg := e.Config
	if cfg == nil || cfg.Direct == "" || p.adapter == nil {
		return
	}
	for _, inst := range p.ancestorPath(e.Target) {
		if h := p.adapter.ListenerFor(inst, cfg.Direct); h != nil {
			e.Direct = append(e.Direct, synthetic.ChainEntry{Handler: h, Instance: inst})
		}
	}
}

// HasAnyListenerForDependencies reports whether any listener for the
// logical event's registration names exists under scopeRoot (nil scans the
// whole tree). Plugins use it to skip extraction work when nobody is
// listening.
func (p *Pipeline) HasAnyListenerForDependencies(logical string, scopeRoot synthetic.Instance) bool {
	if p.adapter == nil || p.registry == nil {
		return false
	}
	cfg := p.registry.ConfigFor(logical)
	if cfg == nil {
		return false
	}
	return p.adapter.HasListenersIn(scopeRoot, cfg.RegistrationNames())
}

// ancestorPath collects the strict ancestor path from target to the root,
// target first. Cycle-freedom is the tree's own invariant; it is consumed
// here, not enforced.
func (p *Pipeline) ancestorPath(target synthetic.Instance) []synthetic.Instance {
	var path []synthetic.Instance
	for inst := target; inst != nil; inst = p.adapter.Parent(inst) {
		path = append(path, inst)
	}
	return path
}
