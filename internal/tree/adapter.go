package tree

import "github.com/dshills/uievent/internal/synthetic"

// Adapter is the ancestor-walk and listener-lookup capability the pipeline
// requires from the host UI tree. Implementations guarantee that Parent
// chains are cycle-free and terminate at the root.
type Adapter interface {
	// InstanceFromNode resolves a raw platform node to the nearest UI
	// instance, or nil if the node is outside the managed tree.
	InstanceFromNode(native any) synthetic.Instance

	// NodeFromInstance returns the platform node backing an instance.
	NodeFromInstance(inst synthetic.Instance) any

	// Parent returns the instance's parent, or nil at the root.
	Parent(inst synthetic.Instance) synthetic.Instance

	// ListenerFor returns the handler registered on the instance under a
	// registration name ("onClick", "onClickCapture"), or nil.
	ListenerFor(inst synthetic.Instance, registrationName string) synthetic.Handler

	// IsDisabled reports whether the instance is administratively
	// disabled (a disabled form control). Disabled nodes are skipped for
	// bubble-phase dispatch of interactive events but still receive
	// capture.
	IsDisabled(inst synthetic.Instance) bool

	// HasListenersIn reports whether any node in the subtree rooted at
	// root carries a listener under any of the given registration names.
	// A nil root means the whole tree. Used as a performance
	// short-circuit, not for correctness.
	HasListenersIn(root synthetic.Instance, registrationNames []string) bool
}
