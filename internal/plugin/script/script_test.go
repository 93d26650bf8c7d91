package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dshills/uievent/internal/synthetic"
)

const burstScript = `
plugin = {
    name = "burst",
    event_types = {
        { logical = "burst", mode = "phased", interactive = true,
          dependencies = { "key-down" } },
    },
    extract = function(kind, payload, target)
        if payload.repeat_count ~= nil and payload.repeat_count > 3 then
            return { type = "burst", fields = { count = payload.repeat_count, keys = payload.keys } }
        end
        return nil
    end,
}
`

type stubAccumulator struct {
	twoPhase int
	direct   int
}

func (s *stubAccumulator) AccumulateTwoPhase(*synthetic.Event) { s.twoPhase++ }
func (s *stubAccumulator) AccumulateDirect(*synthetic.Event)   { s.direct++ }
func (s *stubAccumulator) HasAnyListenerForDependencies(string, synthetic.Instance) bool {
	return true
}

func loadBurst(t *testing.T) (*Plugin, *stubAccumulator) {
	t.Helper()
	acc := &stubAccumulator{}
	p, err := LoadString(burstScript, acc, synthetic.NewPools(zerolog.Nop()), zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	t.Cleanup(p.Close)
	return p, acc
}

func TestLoadDeclaresEventTypes(t *testing.T) {
	p, _ := loadBurst(t)

	if p.Name() != "burst" {
		t.Errorf("Name = %q, want burst", p.Name())
	}
	cfg := p.EventTypes()["burst"]
	if cfg == nil {
		t.Fatal("burst event type not declared")
	}
	if !cfg.IsPhased() || !cfg.Interactive {
		t.Error("burst should be phased and interactive")
	}
	if len(cfg.Dependencies) != 1 || cfg.Dependencies[0] != synthetic.KindKeyDown {
		t.Errorf("Dependencies = %v, want [key-down]", cfg.Dependencies)
	}
}

func TestExtractProducesEvent(t *testing.T) {
	p, acc := loadBurst(t)

	e := p.ExtractEvents(synthetic.KindKeyDown, "node",
		[]byte(`{"repeat_count": 5, "keys": ["a","b"]}`), "native")
	if e == nil {
		t.Fatal("extract should produce an event for repeat_count > 3")
	}
	if e.Type != "burst" {
		t.Errorf("Type = %q, want burst", e.Type)
	}
	if got := e.Float("count"); got != 5 {
		t.Errorf("count = %v, want 5", got)
	}
	keys, ok := e.Field("keys").([]any)
	if !ok || len(keys) != 2 || keys[0] != "a" {
		t.Errorf("keys = %v, want [a b]", e.Field("keys"))
	}
	if acc.twoPhase != 1 {
		t.Errorf("two-phase accumulations = %d, want 1", acc.twoPhase)
	}
}

func TestExtractReturnsNilWhenScriptDeclines(t *testing.T) {
	p, _ := loadBurst(t)

	if e := p.ExtractEvents(synthetic.KindKeyDown, nil, []byte(`{"repeat_count": 1}`), nil); e != nil {
		t.Error("script returning nil should produce no event")
	}
}

func TestUndeclaredKindSkipsScript(t *testing.T) {
	p, _ := loadBurst(t)

	if e := p.ExtractEvents(synthetic.KindClick, nil, []byte(`{"repeat_count": 9}`), nil); e != nil {
		t.Error("kinds outside the declared dependencies must be ignored")
	}
}

func TestScriptErrorIsRecovered(t *testing.T) {
	src := `
plugin = {
    name = "broken",
    event_types = {
        { logical = "broken", dependencies = { "click" } },
    },
    extract = function(kind, payload, target)
        error("boom")
    end,
}
`
	acc := &stubAccumulator{}
	p, err := LoadString(src, acc, synthetic.NewPools(zerolog.Nop()), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	if e := p.ExtractEvents(synthetic.KindClick, nil, []byte(`{}`), nil); e != nil {
		t.Error("a failing script must not produce an event")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"no plugin table", `x = 1`, ErrNoPluginTable},
		{"no extract", `plugin = { name = "p", event_types = { { logical = "a", dependencies = {"click"} } } }`, ErrNoExtract},
		{"no event types", `plugin = { name = "p", event_types = {}, extract = function() end }`, ErrBadEventType},
		{"no dependencies", `plugin = { name = "p", event_types = { { logical = "a" } }, extract = function() end }`, ErrBadEventType},
		{"bad mode", `plugin = { name = "p", event_types = { { logical = "a", mode = "sideways", dependencies = {"click"} } }, extract = function() end }`, ErrBadEventType},
	}
	for _, tt := range tests {
		_, err := LoadString(tt.src, &stubAccumulator{}, synthetic.NewPools(zerolog.Nop()), zerolog.Nop())
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "burst.lua")
	if err := os.WriteFile(path, []byte(burstScript), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path, &stubAccumulator{}, synthetic.NewPools(zerolog.Nop()), zerolog.Nop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer p.Close()
	if p.Name() != "burst" {
		t.Errorf("Name = %q, want burst", p.Name())
	}
}
