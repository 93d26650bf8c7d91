package classifier

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/dshills/uievent/internal/synthetic"
)

// recordingAccumulator records accumulation requests without needing a
// full pipeline.
type recordingAccumulator struct {
	twoPhase int
	direct   int
}

func (r *recordingAccumulator) AccumulateTwoPhase(*synthetic.Event) { r.twoPhase++ }
func (r *recordingAccumulator) AccumulateDirect(*synthetic.Event)   { r.direct++ }
func (r *recordingAccumulator) HasAnyListenerForDependencies(string, synthetic.Instance) bool {
	return true
}

func newTestClassifier(cfg Config) (*Classifier, *recordingAccumulator) {
	acc := &recordingAccumulator{}
	pool := synthetic.NewPools(zerolog.Nop())
	return New(cfg, acc, pool, zerolog.Nop()), acc
}

func TestClassifyClick(t *testing.T) {
	c, acc := newTestClassifier(Config{})

	e := c.ExtractEvents(synthetic.KindClick, "btn", []byte(`{"button":0,"clientX":3}`), nil)
	if e == nil {
		t.Fatal("left click should produce an event")
	}
	if e.Type != "click" {
		t.Errorf("Type = %q, want click", e.Type)
	}
	if e.Shape != synthetic.ShapeMouse {
		t.Errorf("Shape = %v, want mouse", e.Shape)
	}
	if e.Float("clientX") != 3 {
		t.Errorf("clientX = %v, want 3", e.Float("clientX"))
	}
	if acc.twoPhase != 1 {
		t.Errorf("two-phase accumulations = %d, want 1", acc.twoPhase)
	}
}

func TestRightButtonClickDiscarded(t *testing.T) {
	c, _ := newTestClassifier(Config{})

	tests := []struct {
		kind synthetic.Kind
		want bool
	}{
		{synthetic.KindClick, true},
		{synthetic.KindDoubleClick, true},
		// pointer-down legitimately fires for the right button.
		{synthetic.KindPointerDown, false},
	}
	for _, tt := range tests {
		e := c.ExtractEvents(tt.kind, nil, []byte(`{"button":2}`), nil)
		if discarded := e == nil; discarded != tt.want {
			t.Errorf("%s with button=2: discarded = %v, want %v", tt.kind, discarded, tt.want)
		}
	}
}

func TestZeroCharCodeKeyPressDiscarded(t *testing.T) {
	c, _ := newTestClassifier(Config{})

	tests := []struct {
		name    string
		payload string
		want    bool // want an event
	}{
		{"printable", `{"charCode":97,"keyCode":65}`, true},
		{"enter via keyCode", `{"charCode":0,"keyCode":13}`, true},
		{"newline normalized to enter", `{"charCode":10}`, true},
		{"function key", `{"charCode":0,"keyCode":112}`, false},
		{"control character", `{"charCode":8}`, false},
		{"empty payload", `{}`, false},
	}
	for _, tt := range tests {
		e := c.ExtractEvents(synthetic.KindKeyPress, nil, []byte(tt.payload), nil)
		if got := e != nil; got != tt.want {
			t.Errorf("%s: event produced = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyDownNotFilteredByCharCode(t *testing.T) {
	c, _ := newTestClassifier(Config{})
	e := c.ExtractEvents(synthetic.KindKeyDown, nil, []byte(`{"charCode":0,"keyCode":112}`), nil)
	if e == nil {
		t.Error("key-down should not be filtered by character code")
	}
}

func TestUnknownKindIgnored(t *testing.T) {
	c, _ := newTestClassifier(Config{})
	if e := c.ExtractEvents(synthetic.Kind("gamepad-connected"), nil, []byte(`{}`), nil); e != nil {
		t.Error("kinds without a classification should produce no event")
	}
}

func TestExtraEntryFallsBackToBaseShape(t *testing.T) {
	custom := synthetic.Kind("gamepad-connected")
	c, _ := newTestClassifier(Config{
		Extra: []Entry{{Logical: "gamepadConnected", Kind: custom, Shape: synthetic.ShapeBase, Interactive: false}},
		Debug: true,
	})

	e := c.ExtractEvents(custom, nil, []byte(`{}`), nil)
	if e == nil {
		t.Fatal("extra entry should classify its kind")
	}
	if e.Shape != synthetic.ShapeBase {
		t.Errorf("Shape = %v, want base", e.Shape)
	}
	if e.Type != "gamepadConnected" {
		t.Errorf("Type = %q, want gamepadConnected", e.Type)
	}
}

func TestEventTypesCoverBothPriorityClasses(t *testing.T) {
	c, _ := newTestClassifier(Config{})
	types := c.EventTypes()

	if cfg := types["click"]; cfg == nil || !cfg.Interactive {
		t.Error("click should be a registered interactive type")
	}
	if cfg := types["scroll"]; cfg == nil || cfg.Interactive {
		t.Error("scroll should be a registered non-interactive type")
	}
	for logical, cfg := range types {
		if !cfg.IsPhased() {
			t.Errorf("%s: classifier events must be phased", logical)
		}
	}
}

func TestIsInteractiveTopLevelKind(t *testing.T) {
	c, _ := newTestClassifier(Config{})

	tests := []struct {
		kind synthetic.Kind
		want bool
	}{
		{synthetic.KindClick, true},
		{synthetic.KindKeyDown, true},
		{synthetic.KindMouseMove, false},
		{synthetic.KindScroll, false},
		{synthetic.Kind("unknown"), false},
	}
	for _, tt := range tests {
		if got := c.IsInteractiveTopLevelKind(tt.kind); got != tt.want {
			t.Errorf("IsInteractiveTopLevelKind(%s) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestDecodeCharCode(t *testing.T) {
	tests := []struct {
		payload string
		want    int
	}{
		{`{"charCode":97}`, 97},
		{`{"charCode":0,"keyCode":13}`, 13},
		{`{"charCode":10}`, 13},
		{`{"charCode":13}`, 13},
		{`{"charCode":0,"keyCode":112}`, 0},
		{`{"charCode":27}`, 0},
		{`{}`, 0},
	}
	for _, tt := range tests {
		if got := decodeCharCode([]byte(tt.payload)); got != tt.want {
			t.Errorf("decodeCharCode(%s) = %d, want %d", tt.payload, got, tt.want)
		}
	}
}
