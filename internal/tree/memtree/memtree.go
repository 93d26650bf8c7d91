// Package memtree is an in-memory UI tree implementing the adapter
// contract. The demo binary and the pipeline tests use it as the host
// tree; framework integrations supply their own adapter instead.
package memtree

import (
	"github.com/google/uuid"

	"github.com/dshills/uievent/internal/synthetic"
)

// Node is one element of the in-memory tree.
type Node struct {
	// ID is a stable identifier, useful for logging and test assertions.
	ID string

	// Name is a human-readable label ("root", "button").
	Name string

	// Disabled marks the node as administratively disabled; interactive
	// events skip its bubble-phase listeners.
	Disabled bool

	// Editable marks the node as a text-editable control for the
	// selection plugin.
	Editable bool

	parent    *Node
	children  []*Node
	listeners map[string]synthetic.Handler
}

// NewNode creates a detached node with a generated ID.
func NewNode(name string) *Node {
	return &Node{
		ID:        uuid.NewString(),
		Name:      name,
		listeners: make(map[string]synthetic.Handler),
	}
}

// NewChild creates a node attached under the receiver.
func (n *Node) NewChild(name string) *Node {
	child := NewNode(name)
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Parent returns the node's parent, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children.
func (n *Node) Children() []*Node { return n.children }

// On registers a listener under a registration name, replacing any
// previous one. Registering nil removes the listener.
func (n *Node) On(registrationName string, h synthetic.Handler) {
	if h == nil {
		delete(n.listeners, registrationName)
		return
	}
	n.listeners[registrationName] = h
}

// Listener returns the handler registered under the name, or nil.
func (n *Node) Listener(registrationName string) synthetic.Handler {
	return n.listeners[registrationName]
}

// Tree owns a root node and the native-handle association table.
type Tree struct {
	root     *Node
	byNative map[any]*Node
}

// New creates a tree with a root node named "root".
func New() *Tree {
	t := &Tree{
		root:     NewNode("root"),
		byNative: make(map[any]*Node),
	}
	t.Associate(t.root, t.root)
	return t
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node { return t.root }

// Associate binds a raw platform handle to a node so the adapter can
// resolve dispatch targets. A node is always associated with itself.
func (t *Tree) Associate(native any, node *Node) {
	t.byNative[native] = node
	t.byNative[node] = node
}

// Adapter returns the pipeline-facing adapter view of the tree.
func (t *Tree) Adapter() *Adapter { return &Adapter{tree: t} }

// Adapter adapts a Tree to the pipeline's tree contract.
type Adapter struct {
	tree *Tree
}

// InstanceFromNode resolves a native handle to its node. Nodes resolve
// to themselves even without an explicit association.
func (a *Adapter) InstanceFromNode(native any) synthetic.Instance {
	if node, ok := a.tree.byNative[native]; ok {
		return node
	}
	if node, ok := native.(*Node); ok {
		return node
	}
	return nil
}

// NodeFromInstance returns the instance itself; memtree nodes are their
// own platform handles.
func (a *Adapter) NodeFromInstance(inst synthetic.Instance) any {
	return inst
}

// Parent walks one step toward the root.
func (a *Adapter) Parent(inst synthetic.Instance) synthetic.Instance {
	node, ok := inst.(*Node)
	if !ok || node.parent == nil {
		return nil
	}
	return node.parent
}

// ListenerFor looks up a handler by registration name.
func (a *Adapter) ListenerFor(inst synthetic.Instance, registrationName string) synthetic.Handler {
	node, ok := inst.(*Node)
	if !ok {
		return nil
	}
	return node.Listener(registrationName)
}

// IsDisabled reports the node's disabled flag.
func (a *Adapter) IsDisabled(inst synthetic.Instance) bool {
	node, ok := inst.(*Node)
	return ok && node.Disabled
}

// HasListenersIn reports whether any node under root carries one of the
// given registration names. A nil root scans from the tree root.
func (a *Adapter) HasListenersIn(root synthetic.Instance, registrationNames []string) bool {
	start, ok := root.(*Node)
	if !ok || start == nil {
		start = a.tree.root
	}
	return hasListeners(start, registrationNames)
}

func hasListeners(n *Node, names []string) bool {
	for _, name := range names {
		if n.listeners[name] != nil {
			return true
		}
	}
	for _, child := range n.children {
		if hasListeners(child, names) {
			return true
		}
	}
	return false
}
