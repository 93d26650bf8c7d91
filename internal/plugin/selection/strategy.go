package selection

import "github.com/tidwall/gjson"

// Strategy captures and compares selection snapshots. Implementations
// decide which host fields constitute a selection; the plugin only
// requires structural equality over whatever the strategy captures.
type Strategy interface {
	// Snapshot takes a structural snapshot of the current selection from
	// the native payload and the focused platform element.
	Snapshot(native []byte, focusedNative any) any

	// Equal reports structural equality of two snapshots.
	Equal(a, b any) bool
}

// caretSnapshot is the default snapshot: a text caret range when the host
// reports one, otherwise an anchor/focus node+offset pair.
type caretSnapshot struct {
	hasRange bool
	start    int64
	end      int64

	anchorNode   string
	anchorOffset int64
	focusNode    string
	focusOffset  int64
}

// caretStrategy is the default Strategy. It reads the payload's
// "selection" object: "selection.start"/"selection.end" for caret ranges,
// "selection.anchorNode"/"selection.anchorOffset"/"selection.focusNode"/
// "selection.focusOffset" otherwise.
type caretStrategy struct{}

// DefaultStrategy returns the caret-range-or-anchor-pair strategy.
func DefaultStrategy() Strategy { return caretStrategy{} }

func (caretStrategy) Snapshot(native []byte, _ any) any {
	sel := gjson.GetBytes(native, "selection")
	snap := caretSnapshot{}
	if !sel.Exists() {
		return snap
	}
	if start := sel.Get("start"); start.Exists() {
		snap.hasRange = true
		snap.start = start.Int()
		snap.end = sel.Get("end").Int()
		return snap
	}
	snap.anchorNode = sel.Get("anchorNode").String()
	snap.anchorOffset = sel.Get("anchorOffset").Int()
	snap.focusNode = sel.Get("focusNode").String()
	snap.focusOffset = sel.Get("focusOffset").Int()
	return snap
}

func (caretStrategy) Equal(a, b any) bool {
	sa, okA := a.(caretSnapshot)
	sb, okB := b.(caretSnapshot)
	return okA && okB && sa == sb
}
