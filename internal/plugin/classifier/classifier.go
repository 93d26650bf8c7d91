package classifier

import (
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/dshills/uievent/internal/plugin"
	"github.com/dshills/uievent/internal/synthetic"
)

// PluginName is the classifier's injection name.
const PluginName = "classifier"

// secondaryButton is the platform button code for the right mouse button.
const secondaryButton = 2

// Entry declares one classified logical event: the native kind that
// triggers it, the shape family of the produced event, and its priority
// class.
type Entry struct {
	Logical     string
	Kind        synthetic.Kind
	Shape       synthetic.Shape
	Interactive bool
}

// Interactive logical events carry user intent and are classified ahead of
// ambient ones.
var interactiveEntries = []Entry{
	{"click", synthetic.KindClick, synthetic.ShapeMouse, true},
	{"doubleClick", synthetic.KindDoubleClick, synthetic.ShapeMouse, true},
	{"contextMenu", synthetic.KindContextMenu, synthetic.ShapeMouse, true},
	{"pointerDown", synthetic.KindPointerDown, synthetic.ShapeMouse, true},
	{"pointerUp", synthetic.KindPointerUp, synthetic.ShapeMouse, true},
	{"keyDown", synthetic.KindKeyDown, synthetic.ShapeKeyboard, true},
	{"keyUp", synthetic.KindKeyUp, synthetic.ShapeKeyboard, true},
	{"keyPress", synthetic.KindKeyPress, synthetic.ShapeKeyboard, true},
	{"focus", synthetic.KindFocusIn, synthetic.ShapeFocus, true},
	{"blur", synthetic.KindFocusOut, synthetic.ShapeFocus, true},
	{"input", synthetic.KindInput, synthetic.ShapeBase, true},
	{"change", synthetic.KindChange, synthetic.ShapeBase, true},
	{"submit", synthetic.KindSubmit, synthetic.ShapeBase, true},
	{"touchStart", synthetic.KindTouchStart, synthetic.ShapeTouch, true},
	{"touchEnd", synthetic.KindTouchEnd, synthetic.ShapeTouch, true},
	{"touchCancel", synthetic.KindTouchCancel, synthetic.ShapeTouch, true},
	{"dragStart", synthetic.KindDragStart, synthetic.ShapeDrag, true},
	{"dragEnd", synthetic.KindDragEnd, synthetic.ShapeDrag, true},
	{"drop", synthetic.KindDrop, synthetic.ShapeDrag, true},
	{"copy", synthetic.KindCopy, synthetic.ShapeClipboard, true},
	{"cut", synthetic.KindCut, synthetic.ShapeClipboard, true},
	{"paste", synthetic.KindPaste, synthetic.ShapeClipboard, true},
	{"compositionStart", synthetic.KindCompositionStart, synthetic.ShapeComposition, true},
	{"compositionEnd", synthetic.KindCompositionEnd, synthetic.ShapeComposition, true},
}

// Non-interactive logical events are ambient notifications.
var nonInteractiveEntries = []Entry{
	{"mouseMove", synthetic.KindMouseMove, synthetic.ShapeMouse, false},
	{"mouseOver", synthetic.KindMouseOver, synthetic.ShapeMouse, false},
	{"mouseOut", synthetic.KindMouseOut, synthetic.ShapeMouse, false},
	{"scroll", synthetic.KindScroll, synthetic.ShapeUI, false},
	{"wheel", synthetic.KindWheel, synthetic.ShapeWheel, false},
	{"touchMove", synthetic.KindTouchMove, synthetic.ShapeTouch, false},
	{"drag", synthetic.KindDrag, synthetic.ShapeDrag, false},
	{"dragEnter", synthetic.KindDragEnter, synthetic.ShapeDrag, false},
	{"dragLeave", synthetic.KindDragLeave, synthetic.ShapeDrag, false},
	{"dragOver", synthetic.KindDragOver, synthetic.ShapeDrag, false},
	{"animationStart", synthetic.KindAnimationStart, synthetic.ShapeAnimation, false},
	{"animationEnd", synthetic.KindAnimationEnd, synthetic.ShapeAnimation, false},
	{"animationIteration", synthetic.KindAnimationIter, synthetic.ShapeAnimation, false},
	{"transitionEnd", synthetic.KindTransitionEnd, synthetic.ShapeTransition, false},
	{"compositionUpdate", synthetic.KindCompositionUpdate, synthetic.ShapeComposition, false},
	{"progress", synthetic.KindProgress, synthetic.ShapeBase, false},
	{"load", synthetic.KindLoad, synthetic.ShapeBase, false},
}

// knownKinds is the exhaustive allow-list of native kinds the framework
// ships classifications for. A config entry outside this list triggers a
// diagnostic warning when Debug is enabled.
var knownKinds = func() map[synthetic.Kind]bool {
	m := make(map[synthetic.Kind]bool)
	for _, e := range interactiveEntries {
		m[e.Kind] = true
	}
	for _, e := range nonInteractiveEntries {
		m[e.Kind] = true
	}
	return m
}()

// Config configures the classifier plugin.
type Config struct {
	// Extra adds host-specific classifications on top of the static
	// table. Entries with an unset shape fall back to the base shape.
	Extra []Entry

	// Debug enables diagnostic reporting of entries whose kind is not in
	// the known allow-list. Never fatal.
	Debug bool
}

// Classifier is the stateless multi-event extraction plugin. It is a pure
// function of the current native event; it carries no cross-event state.
type Classifier struct {
	acc   plugin.Accumulator
	pool  *synthetic.Pools
	log   zerolog.Logger
	debug bool

	types   map[string]*synthetic.DispatchConfig
	byKind  map[synthetic.Kind]*synthetic.DispatchConfig
	shapeBy map[synthetic.Kind]synthetic.Shape
}

// New builds the classifier from the static table plus any configured
// extra entries. With Debug enabled it checks the table's exhaustiveness
// against the known kind allow-list at startup.
func New(cfg Config, acc plugin.Accumulator, pool *synthetic.Pools, log zerolog.Logger) *Classifier {
	c := &Classifier{
		acc:     acc,
		pool:    pool,
		log:     log,
		debug:   cfg.Debug,
		types:   make(map[string]*synthetic.DispatchConfig),
		byKind:  make(map[synthetic.Kind]*synthetic.DispatchConfig),
		shapeBy: make(map[synthetic.Kind]synthetic.Shape),
	}

	add := func(e Entry) {
		dc := synthetic.PhasedConfig(e.Logical, e.Interactive, e.Kind)
		c.types[e.Logical] = dc
		c.byKind[e.Kind] = dc
		c.shapeBy[e.Kind] = e.Shape

		if cfg.Debug && !knownKinds[e.Kind] {
			c.log.Warn().
				Str("kind", e.Kind.String()).
				Str("logical", e.Logical).
				Msg("classifier entry for kind outside the known allow-list; likely a framework bug")
		}
	}

	for _, e := range interactiveEntries {
		add(e)
	}
	for _, e := range nonInteractiveEntries {
		add(e)
	}
	for _, e := range cfg.Extra {
		add(e)
	}
	return c
}

// Name implements plugin.Plugin.
func (c *Classifier) Name() string { return PluginName }

// EventTypes implements plugin.Plugin.
func (c *Classifier) EventTypes() map[string]*synthetic.DispatchConfig {
	return c.types
}

// IsInteractiveTopLevelKind reports whether the kind maps to an
// interactive logical event.
func (c *Classifier) IsInteractiveTopLevelKind(kind synthetic.Kind) bool {
	dc, ok := c.byKind[kind]
	return ok && dc.Interactive
}

// ExtractEvents classifies one native event into at most one two-phase
// synthetic event.
func (c *Classifier) ExtractEvents(kind synthetic.Kind, target synthetic.Instance, native []byte, nativeTarget any) *synthetic.Event {
	dc, ok := c.byKind[kind]
	if !ok {
		return nil
	}

	switch kind {
	case synthetic.KindKeyPress:
		// Function keys on some platforms emit key-press with no
		// character; suppress them.
		if decodeCharCode(native) == 0 {
			return nil
		}
	case synthetic.KindClick, synthetic.KindDoubleClick:
		// Some platforms synthesize a click for the secondary button.
		if int(gjson.GetBytes(native, "button").Int()) == secondaryButton {
			return nil
		}
	}

	e := c.pool.Acquire(dc, c.shapeFor(kind), target, native, nativeTarget)
	c.acc.AccumulateTwoPhase(e)
	return e
}

// shapeFor selects the event-family shape for a kind, falling back to the
// base shape for anything unrecognized.
func (c *Classifier) shapeFor(kind synthetic.Kind) synthetic.Shape {
	if s, ok := c.shapeBy[kind]; ok {
		return s
	}
	if c.debug && !knownKinds[kind] {
		c.log.Warn().
			Str("kind", kind.String()).
			Msg("no shape mapping for kind; falling back to base shape")
	}
	return synthetic.ShapeBase
}

// decodeCharCode normalizes the platform character code of a key-press.
// Enter is reported inconsistently (charCode 0 with keyCode 13, or a bare
// newline); everything below space that is not Enter is treated as a
// non-character.
func decodeCharCode(native []byte) int {
	charCode := int(gjson.GetBytes(native, "charCode").Int())
	keyCode := int(gjson.GetBytes(native, "keyCode").Int())

	if charCode == 0 && keyCode == 13 {
		charCode = 13
	}
	if charCode == 10 {
		charCode = 13
	}
	if charCode >= 32 || charCode == 13 {
		return charCode
	}
	return 0
}
