package registry

import (
	"fmt"

	"github.com/dshills/uievent/internal/plugin"
	"github.com/dshills/uievent/internal/synthetic"
)

// Registry is the append-only plugin and dispatch-config table. It is an
// explicit service object constructed at startup and threaded through the
// pipeline by reference; there is no package-level singleton.
type Registry struct {
	order       []string
	orderSet    bool
	byName      map[string]plugin.Plugin
	ordered     []plugin.Plugin
	configs     map[string]*synthetic.DispatchConfig
	configOwner map[string]string
}

// New creates an empty registry.
func New() *Registry {
	r := &Registry{}
	r.init()
	return r
}

func (r *Registry) init() {
	r.order = nil
	r.orderSet = false
	r.byName = make(map[string]plugin.Plugin)
	r.ordered = nil
	r.configs = make(map[string]*synthetic.DispatchConfig)
	r.configOwner = make(map[string]string)
}

// InjectOrder fixes the plugin execution order for the process lifetime.
// It must be called exactly once, before any plugin injection it governs;
// a second call is a fatal startup error.
func (r *Registry) InjectOrder(names []string) error {
	if r.orderSet {
		return ErrOrderAlreadyInjected
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return fmt.Errorf("plugin %q listed twice in order: %w", name, ErrInvalidOrder)
		}
		seen[name] = true
	}
	r.order = append([]string(nil), names...)
	r.orderSet = true
	return nil
}

// InjectPlugins merges each plugin's event types into the global table.
// The whole batch is validated before any state is merged, so a failed
// injection leaves no partial registry state observable. Injection order
// within the map does not matter; execution order comes from InjectOrder.
func (r *Registry) InjectPlugins(plugins map[string]plugin.Plugin) error {
	if !r.orderSet {
		return ErrOrderNotInjected
	}

	// Validate the whole batch first.
	inOrder := make(map[string]bool, len(r.order))
	for _, name := range r.order {
		inOrder[name] = true
	}
	claimed := make(map[string]string)
	for name, p := range plugins {
		if p == nil {
			return fmt.Errorf("plugin %q: %w", name, ErrNilPlugin)
		}
		if !inOrder[name] {
			return fmt.Errorf("plugin %q: %w", name, ErrPluginNotInOrder)
		}
		if _, dup := r.byName[name]; dup {
			return fmt.Errorf("plugin %q: %w", name, ErrPluginAlreadyInjected)
		}
		for logical := range p.EventTypes() {
			if owner, ok := r.configOwner[logical]; ok {
				return fmt.Errorf("logical event %q claimed by %q and %q: %w",
					logical, owner, name, ErrDuplicateLogicalName)
			}
			if owner, ok := claimed[logical]; ok {
				return fmt.Errorf("logical event %q claimed by %q and %q: %w",
					logical, owner, name, ErrDuplicateLogicalName)
			}
			claimed[logical] = name
		}
	}

	// Merge.
	for name, p := range plugins {
		r.byName[name] = p
		for logical, cfg := range p.EventTypes() {
			r.configs[logical] = cfg
			r.configOwner[logical] = name
		}
	}
	r.rebuildOrdered()
	return nil
}

func (r *Registry) rebuildOrdered() {
	r.ordered = r.ordered[:0]
	for _, name := range r.order {
		if p, ok := r.byName[name]; ok {
			r.ordered = append(r.ordered, p)
		}
	}
}

// Plugins returns every injected plugin in the fixed injected order.
// Extraction and config lookups always run in this order.
func (r *Registry) Plugins() []plugin.Plugin {
	return r.ordered
}

// ConfigFor returns the dispatch config for a logical event name, or nil
// if no plugin claims it.
func (r *Registry) ConfigFor(logical string) *synthetic.DispatchConfig {
	return r.configs[logical]
}

// NativeDependenciesFor returns every native kind that can trigger
// extraction of the logical event.
func (r *Registry) NativeDependenciesFor(logical string) []synthetic.Kind {
	cfg := r.configs[logical]
	if cfg == nil {
		return nil
	}
	return cfg.Dependencies
}

// Reset clears all injected state so tests can rebuild the registry.
// Production code never calls it; the table is append-only for the
// process lifetime.
func (r *Registry) Reset() {
	r.init()
}
