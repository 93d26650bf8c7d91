// Package tree declares the adapter boundary between the event pipeline
// and the host's UI-element tree.
//
// The pipeline never owns or reshapes the tree; it only needs to resolve a
// native platform node to the nearest UI instance, walk ancestors toward
// the root, look up listeners by registration name, and ask whether a node
// is administratively disabled for interaction events. The Adapter
// interface captures exactly that surface. It must be injected before the
// first dispatch; dispatching without one is a fatal invariant violation.
//
// The memtree subpackage provides an in-memory implementation used by the
// demo binary and the tests.
package tree
