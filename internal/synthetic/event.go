package synthetic

// ChainEntry pairs a listener with the UI-tree node it is registered on.
// The accumulated chain of a phased event is the strict ancestor path from
// the event's target to the tree root.
type ChainEntry struct {
	// Handler is the listener to invoke.
	Handler Handler

	// Instance is the node owning the listener; it becomes the event's
	// CurrentTarget while the handler runs.
	Instance Instance
}

// Event is a pooled synthetic event. Its field values are valid only
// between Acquire and the end of the current dispatch batch unless a
// listener calls Persist.
type Event struct {
	// Config is the dispatch config of the event's logical type.
	Config *DispatchConfig

	// Shape is the extension-field family this event was built from.
	Shape Shape

	// Type is the logical event name.
	Type string

	// Target is the UI-tree node nearest the physical event target.
	Target Instance

	// CurrentTarget is the node whose listener is currently running.
	// It is only meaningful during handler invocation.
	CurrentTarget Instance

	// Native is the raw native event payload, borrowed from the host for
	// the duration of the dispatch. It is never owned past release.
	Native []byte

	// NativeTarget is the raw platform target the host reported.
	NativeTarget any

	// Capture, Bubble, and Direct are the accumulated listener chains.
	// Capture runs root-to-target, Bubble target-to-root; Direct is the
	// single unphased set for non-bubbling events.
	Capture []ChainEntry
	Bubble  []ChainEntry
	Direct  []ChainEntry

	fields map[string]any

	propagationStopped bool
	defaultPrevented   bool
	pooled             bool
	persistent         bool
	released           bool

	pool *Pools
}

// Field returns the named extension field, or the shape's declared default
// if the payload did not carry it. Accessing a released, non-persistent
// event is a usage error; it is reported and the zero value returned.
func (e *Event) Field(name string) any {
	if e.reportIfReleased("Field") {
		return nil
	}
	v, ok := e.fields[name]
	if !ok {
		return nil
	}
	return v
}

// Float returns a numeric extension field.
func (e *Event) Float(name string) float64 {
	v, _ := e.Field(name).(float64)
	return v
}

// Str returns a string extension field.
func (e *Event) Str(name string) string {
	v, _ := e.Field(name).(string)
	return v
}

// Bool returns a boolean extension field.
func (e *Event) Bool(name string) bool {
	v, _ := e.Field(name).(bool)
	return v
}

// SetField attaches an ad-hoc derived value to the event. Handlers may use
// it to pass read-only annotations down the chain; the value is cleared on
// release like every declared field.
func (e *Event) SetField(name string, value any) {
	if e.reportIfReleased("SetField") {
		return
	}
	e.fields[name] = value
}

// StopPropagation stops the remaining listeners in the current phase and,
// if called during capture, suppresses the bubble phase entirely.
func (e *Event) StopPropagation() {
	if e.reportIfReleased("StopPropagation") {
		return
	}
	e.propagationStopped = true
}

// PropagationStopped reports whether StopPropagation has been called.
func (e *Event) PropagationStopped() bool { return e.propagationStopped }

// PreventDefault marks the event's default action as prevented. The core
// pipeline does not act on the flag; a consuming layer may.
func (e *Event) PreventDefault() {
	if e.reportIfReleased("PreventDefault") {
		return
	}
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault has been called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Persist removes this instance from its pool's return path permanently,
// extending its valid lifetime beyond the current dispatch batch. Calling
// it more than once has the same effect as calling it once.
func (e *Event) Persist() {
	e.persistent = true
}

// Persistent reports whether the event has been persisted.
func (e *Event) Persistent() bool { return e.persistent }

// Released reports whether the event has been returned to its pool.
func (e *Event) Released() bool { return e.released }

// reportIfReleased flags use-after-release through the pool's diagnostic
// logger. It never panics; a stale read must not corrupt other events.
func (e *Event) reportIfReleased(op string) bool {
	if !e.released || e.persistent {
		return false
	}
	if e.pool != nil {
		e.pool.reportStaleAccess(op, e.Type)
	}
	return true
}
