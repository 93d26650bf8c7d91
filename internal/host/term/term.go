package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/dshills/uievent/internal/dispatch"
	"github.com/dshills/uievent/internal/synthetic"
)

// HitTest resolves terminal coordinates to the native object under
// them. Returning nil means the point hits nothing.
type HitTest func(x, y int) any

// Host feeds terminal input into a dispatch pipeline.
type Host struct {
	pipe *dispatch.Pipeline
	hit  HitTest
	log  zerolog.Logger

	screen tcell.Screen
	frame  func(tcell.Screen)

	clicks  *clickTracker
	buttons tcell.ButtonMask
	lastX   int
	lastY   int

	focus any
}

// New builds a host over the given pipeline. hit maps coordinates to
// native targets for mouse events.
func New(pipe *dispatch.Pipeline, hit HitTest, log zerolog.Logger) *Host {
	return &Host{
		pipe:   pipe,
		hit:    hit,
		log:    log,
		clicks: newClickTracker(),
		lastX:  -1,
		lastY:  -1,
	}
}

// OnFrame registers a callback invoked after each handled event, for
// redrawing.
func (h *Host) OnFrame(fn func(tcell.Screen)) { h.frame = fn }

// Focus returns the native object key events are delivered to.
func (h *Host) Focus() any { return h.focus }

// SetFocus moves key-event delivery to native, dispatching focus-out on
// the old target and focus-in on the new one. editable marks the new
// target as accepting text selection.
func (h *Host) SetFocus(native any, editable bool) {
	if h.focus == native {
		return
	}
	if h.focus != nil {
		h.dispatch(synthetic.KindFocusOut, newPayload().bytes(), h.focus)
	}
	h.focus = native
	if native != nil {
		pl := newPayload().set("editable", editable)
		h.dispatch(synthetic.KindFocusIn, pl.bytes(), native)
	}
}

// Run owns the terminal: it initializes a tcell screen, enables mouse
// reporting, and pumps events into the pipeline until Stop is called or
// Ctrl-C arrives.
func (h *Host) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.EnableMouse()
	defer screen.Fini()
	h.screen = screen

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyCtrlC {
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			return nil
		}
		h.Handle(ev)
		if h.frame != nil {
			h.frame(screen)
			screen.Show()
		}
	}
}

// Stop wakes the Run loop and makes it return.
func (h *Host) Stop() {
	if h.screen != nil {
		_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// Handle translates one tcell event into native dispatches. Exported so
// applications embedding their own event loop can feed the host.
func (h *Host) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		if h.screen != nil {
			h.screen.Sync()
		}
	}
}

func (h *Host) handleKey(ev *tcell.EventKey) {
	pl := newPayload().
		set("key", keyName(ev)).
		set("keyCode", keyCode(ev)).
		modifiers(ev.Modifiers())
	if ev.Key() == tcell.KeyRune {
		pl.set("charCode", int(ev.Rune()))
	} else if ev.Key() == tcell.KeyEnter {
		pl.set("charCode", 13)
	}

	h.dispatch(synthetic.KindKeyDown, pl.bytes(), h.focus)
	if ev.Key() == tcell.KeyRune || ev.Key() == tcell.KeyEnter {
		h.dispatch(synthetic.KindKeyPress, pl.bytes(), h.focus)
	}
	// Terminals report no key release; synthesize one so release-driven
	// plugins still get their checkpoint.
	h.dispatch(synthetic.KindKeyUp, pl.bytes(), h.focus)
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	target := h.hit(x, y)
	pressed := ev.Buttons() & buttonBits

	pl := func() *payload {
		return newPayload().
			position(x, y).
			set("buttons", domButtons(pressed)).
			modifiers(ev.Modifiers())
	}

	if delta := ev.Buttons() & wheelBits; delta != 0 {
		wp := pl()
		switch {
		case delta&tcell.WheelUp != 0:
			wp.set("deltaY", -1)
		case delta&tcell.WheelDown != 0:
			wp.set("deltaY", 1)
		}
		switch {
		case delta&tcell.WheelLeft != 0:
			wp.set("deltaX", -1)
		case delta&tcell.WheelRight != 0:
			wp.set("deltaX", 1)
		}
		h.dispatch(synthetic.KindWheel, wp.bytes(), target)
	}

	for _, b := range []tcell.ButtonMask{tcell.Button1, tcell.Button2, tcell.Button3} {
		was := h.buttons&b != 0
		now := pressed&b != 0
		switch {
		case now && !was:
			h.dispatch(synthetic.KindPointerDown, pl().set("button", domButton(b)).bytes(), target)
		case was && !now:
			h.dispatch(synthetic.KindPointerUp, pl().set("button", domButton(b)).bytes(), target)
			h.synthesizeClick(b, x, y, ev, pl, target)
		}
	}

	if pressed == h.buttons && (x != h.lastX || y != h.lastY) {
		h.dispatch(synthetic.KindMouseMove, pl().bytes(), target)
	}

	h.buttons = pressed
	h.lastX, h.lastY = x, y
}

// synthesizeClick turns a button release into the click-family kind the
// synthetic layer expects.
func (h *Host) synthesizeClick(b tcell.ButtonMask, x, y int, ev *tcell.EventMouse, pl func() *payload, target any) {
	switch b {
	case tcell.Button1:
		count := h.clicks.record(x, y, ev.When())
		cp := pl().set("button", 0).set("detail", count)
		h.dispatch(synthetic.KindClick, cp.bytes(), target)
		if count == 2 {
			h.dispatch(synthetic.KindDoubleClick, cp.bytes(), target)
		}
	case tcell.Button2:
		h.dispatch(synthetic.KindContextMenu, pl().set("button", 2).bytes(), target)
	}
}

func (h *Host) dispatch(kind synthetic.Kind, native []byte, nativeTarget any) {
	if nativeTarget == nil {
		return
	}
	if err := h.pipe.Dispatch(kind, native, nativeTarget); err != nil {
		h.log.Error().Err(err).Str("kind", kind.String()).Msg("dispatch failed")
	}
}

const (
	buttonBits = tcell.Button1 | tcell.Button2 | tcell.Button3
	wheelBits  = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight
)

// domButton maps a tcell button to the 0/1/2 numbering the mouse shape
// carries: primary, middle, secondary. tcell's Button2 is the secondary
// button and Button3 the middle one.
func domButton(b tcell.ButtonMask) int {
	switch b {
	case tcell.Button1:
		return 0
	case tcell.Button3:
		return 1
	case tcell.Button2:
		return 2
	default:
		return 0
	}
}

// domButtons maps a pressed-button mask to the buttons bitmask
// (primary 1, secondary 2, middle 4).
func domButtons(mask tcell.ButtonMask) int {
	var out int
	if mask&tcell.Button1 != 0 {
		out |= 1
	}
	if mask&tcell.Button2 != 0 {
		out |= 2
	}
	if mask&tcell.Button3 != 0 {
		out |= 4
	}
	return out
}

func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyTab:
		return "Tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "Backspace"
	case tcell.KeyEsc:
		return "Escape"
	case tcell.KeyDelete:
		return "Delete"
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyHome:
		return "Home"
	case tcell.KeyEnd:
		return "End"
	case tcell.KeyPgUp:
		return "PageUp"
	case tcell.KeyPgDn:
		return "PageDown"
	default:
		return ev.Name()
	}
}

func keyCode(ev *tcell.EventKey) int {
	switch ev.Key() {
	case tcell.KeyRune:
		return int(unicode.ToUpper(ev.Rune()))
	case tcell.KeyEnter:
		return 13
	case tcell.KeyTab:
		return 9
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return 8
	case tcell.KeyEsc:
		return 27
	case tcell.KeyDelete:
		return 46
	case tcell.KeyLeft:
		return 37
	case tcell.KeyUp:
		return 38
	case tcell.KeyRight:
		return 39
	case tcell.KeyDown:
		return 40
	case tcell.KeyHome:
		return 36
	case tcell.KeyEnd:
		return 35
	case tcell.KeyPgUp:
		return 33
	case tcell.KeyPgDn:
		return 34
	default:
		return 0
	}
}
