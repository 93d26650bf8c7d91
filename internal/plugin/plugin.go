package plugin

import "github.com/dshills/uievent/internal/synthetic"

// Plugin is the extraction capability contract. Implementations must be
// safe to call repeatedly from a single dispatch goroutine; they are
// invoked for every native event in the fixed injected order.
type Plugin interface {
	// Name is the plugin's injection name, referenced by the injected
	// plugin order.
	Name() string

	// EventTypes returns the logical events this plugin can produce,
	// keyed by logical name. The registry merges these into the global
	// dispatch-config table at injection time; names must be globally
	// unique across all plugins.
	EventTypes() map[string]*synthetic.DispatchConfig

	// ExtractEvents inspects one native event and returns at most one
	// synthetic event, or nil when the plugin is not interested or a
	// platform-quirk filter rejects the event. The returned event must
	// already carry its accumulated listener chains.
	ExtractEvents(kind synthetic.Kind, target synthetic.Instance, native []byte, nativeTarget any) *synthetic.Event
}

// InteractiveClassifier is optionally implemented by plugins that can
// classify native kinds by user-intent priority. Hosts may use it to
// schedule interactive events ahead of ambient ones.
type InteractiveClassifier interface {
	IsInteractiveTopLevelKind(kind synthetic.Kind) bool
}

// Accumulator attaches listener-invocation chains to a freshly extracted
// event. Plugins call it before returning the event; building a chain
// never invokes a handler. The dispatch pipeline implements it.
type Accumulator interface {
	// AccumulateTwoPhase walks the tree from the event's target to the
	// root and attaches the capture (root-to-target) and bubble
	// (target-to-root) chains.
	AccumulateTwoPhase(e *synthetic.Event)

	// AccumulateDirect attaches the single unphased listener set for
	// non-bubbling events.
	AccumulateDirect(e *synthetic.Event)

	// HasAnyListenerForDependencies reports whether any listener for the
	// logical event's registration names exists in scope. A performance
	// short-circuit for plugins, not a correctness requirement.
	HasAnyListenerForDependencies(logical string, scopeRoot synthetic.Instance) bool
}
