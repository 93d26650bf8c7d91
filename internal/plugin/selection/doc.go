// Package selection implements the stateful cross-event extraction plugin
// producing the logical "select" event.
//
// The plugin remembers facts across several unrelated native events: the
// currently focused editable element and its UI node, the last observed
// selection snapshot, and whether the pointer is currently pressed. A
// "select" event is emitted only when the selection of the focused element
// structurally changes while no drag-select is in progress, matching
// native browser semantics.
//
// The exact shape of a selection snapshot is host-dependent (a caret range
// when available, an anchor/focus node+offset pair otherwise), so the
// comparison is a pluggable Strategy rather than a hard-coded field set.
//
// State transitions happen only as a side effect of ExtractEvents and rely
// on the pipeline's single-threaded, run-to-completion model plus the
// host's guaranteed event ordering (focus before the keys and clicks that
// follow it).
package selection
