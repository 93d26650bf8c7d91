package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/tidwall/sjson"
)

// payload incrementally builds a native JSON payload. sjson only fails
// on malformed paths, which are all literals here, so errors are
// swallowed.
type payload struct {
	b []byte
}

func newPayload() *payload {
	return &payload{b: []byte("{}")}
}

func (p *payload) set(path string, value any) *payload {
	p.b, _ = sjson.SetBytes(p.b, path, value)
	return p
}

func (p *payload) bytes() []byte { return p.b }

func (p *payload) modifiers(mods tcell.ModMask) *payload {
	return p.
		set("ctrlKey", mods&tcell.ModCtrl != 0).
		set("shiftKey", mods&tcell.ModShift != 0).
		set("altKey", mods&tcell.ModAlt != 0).
		set("metaKey", mods&tcell.ModMeta != 0)
}

func (p *payload) position(x, y int) *payload {
	// Terminal cells have no screen/client split; report the same
	// coordinates for both.
	return p.
		set("clientX", x).set("clientY", y).
		set("screenX", x).set("screenY", y)
}
