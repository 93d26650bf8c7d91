package synthetic

import "github.com/rs/zerolog"

// Pools manages one free list per event shape. It relies on the pipeline's
// single-threaded, run-to-completion execution model and takes no locks;
// a multi-threaded host must serialize all calls into the pipeline.
type Pools struct {
	free [shapeCount][]*Event

	log zerolog.Logger

	// staleAccesses counts detected use-after-release reads, for tests
	// and diagnostics.
	staleAccesses int
}

// NewPools creates the per-shape free lists. The logger receives
// diagnostic reports of use-after-release; pass a disabled logger to
// silence them.
func NewPools(log zerolog.Logger) *Pools {
	return &Pools{log: log}
}

// Acquire pops a free instance of the shape (or allocates one), populates
// the base fields and every extension field per the shape's derivation
// rules, and resets the propagation and prevention flags. The payload is
// borrowed; it must stay valid for the duration of the dispatch.
func (p *Pools) Acquire(cfg *DispatchConfig, shape Shape, target Instance, native []byte, nativeTarget any) *Event {
	var e *Event
	if n := len(p.free[shape]); n > 0 {
		e = p.free[shape][n-1]
		p.free[shape] = p.free[shape][:n-1]
	} else {
		e = &Event{fields: make(map[string]any)}
	}

	e.Config = cfg
	e.Shape = shape
	e.Type = cfg.Logical
	e.Target = target
	e.CurrentTarget = nil
	e.Native = native
	e.NativeTarget = nativeTarget
	e.propagationStopped = false
	e.defaultPrevented = false
	e.pooled = true
	e.persistent = false
	e.released = false
	e.pool = p

	for _, d := range shape.Fields() {
		e.fields[d.Name] = d.derive(native)
	}
	return e
}

// Release resets every field to its default and returns the instance to
// its shape's free list. Persistent events are left alone; they are
// reclaimed by the garbage collector, not the pool. Releasing twice is a
// no-op.
func (p *Pools) Release(e *Event) {
	if e == nil || e.persistent || e.released {
		return
	}

	e.Config = nil
	e.Type = ""
	e.Target = nil
	e.CurrentTarget = nil
	e.Native = nil
	e.NativeTarget = nil
	e.Capture = nil
	e.Bubble = nil
	e.Direct = nil
	for _, d := range e.Shape.Fields() {
		e.fields[d.Name] = d.Default
	}
	// Ad-hoc fields attached by handlers are dropped entirely.
	for name := range e.fields {
		declared := false
		for _, d := range e.Shape.Fields() {
			if d.Name == name {
				declared = true
				break
			}
		}
		if !declared {
			delete(e.fields, name)
		}
	}

	e.pooled = false
	e.released = true
	p.free[e.Shape] = append(p.free[e.Shape], e)
}

// FreeCount returns the number of pooled instances for a shape.
func (p *Pools) FreeCount(shape Shape) int {
	return len(p.free[shape])
}

// StaleAccesses returns the number of detected use-after-release reads.
func (p *Pools) StaleAccesses() int { return p.staleAccesses }

func (p *Pools) reportStaleAccess(op, eventType string) {
	p.staleAccesses++
	p.log.Warn().
		Str("op", op).
		Str("type", eventType).
		Msg("synthetic event accessed after release; call Persist to extend its lifetime")
}
