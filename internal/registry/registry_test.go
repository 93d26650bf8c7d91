package registry

import (
	"errors"
	"testing"

	"github.com/dshills/uievent/internal/plugin"
	"github.com/dshills/uievent/internal/synthetic"
)

// fakePlugin is a minimal plugin for registry tests.
type fakePlugin struct {
	name  string
	types map[string]*synthetic.DispatchConfig
}

func (f *fakePlugin) Name() string                                     { return f.name }
func (f *fakePlugin) EventTypes() map[string]*synthetic.DispatchConfig { return f.types }
func (f *fakePlugin) ExtractEvents(synthetic.Kind, synthetic.Instance, []byte, any) *synthetic.Event {
	return nil
}

func newFake(name string, logicals ...string) *fakePlugin {
	types := make(map[string]*synthetic.DispatchConfig)
	for _, l := range logicals {
		types[l] = synthetic.PhasedConfig(l, true, synthetic.KindClick)
	}
	return &fakePlugin{name: name, types: types}
}

func TestInjectOrderTwiceFails(t *testing.T) {
	r := New()
	if err := r.InjectOrder([]string{"a"}); err != nil {
		t.Fatalf("first InjectOrder failed: %v", err)
	}
	err := r.InjectOrder([]string{"b"})
	if !errors.Is(err, ErrOrderAlreadyInjected) {
		t.Errorf("second InjectOrder error = %v, want ErrOrderAlreadyInjected", err)
	}
}

func TestInjectOrderDuplicateName(t *testing.T) {
	r := New()
	err := r.InjectOrder([]string{"a", "a"})
	if !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("InjectOrder error = %v, want ErrInvalidOrder", err)
	}
}

func TestInjectPluginsBeforeOrderFails(t *testing.T) {
	r := New()
	err := r.InjectPlugins(map[string]plugin.Plugin{"a": newFake("a", "click")})
	if !errors.Is(err, ErrOrderNotInjected) {
		t.Errorf("InjectPlugins error = %v, want ErrOrderNotInjected", err)
	}
}

func TestInjectPluginNotInOrderFails(t *testing.T) {
	r := New()
	if err := r.InjectOrder([]string{"a"}); err != nil {
		t.Fatal(err)
	}
	err := r.InjectPlugins(map[string]plugin.Plugin{"b": newFake("b", "click")})
	if !errors.Is(err, ErrPluginNotInOrder) {
		t.Errorf("InjectPlugins error = %v, want ErrPluginNotInOrder", err)
	}
}

func TestDuplicateLogicalNameFailsWithoutPartialState(t *testing.T) {
	r := New()
	if err := r.InjectOrder([]string{"a", "b"}); err != nil {
		t.Fatal(err)
	}
	if err := r.InjectPlugins(map[string]plugin.Plugin{"a": newFake("a", "click")}); err != nil {
		t.Fatal(err)
	}

	// b claims "click" already owned by a, and also a fresh name that
	// must not leak into the table when the batch is rejected.
	err := r.InjectPlugins(map[string]plugin.Plugin{"b": newFake("b", "click", "hover")})
	if !errors.Is(err, ErrDuplicateLogicalName) {
		t.Fatalf("InjectPlugins error = %v, want ErrDuplicateLogicalName", err)
	}
	if r.ConfigFor("hover") != nil {
		t.Error("partial state observable: rejected batch registered a config")
	}
	if len(r.Plugins()) != 1 {
		t.Errorf("Plugins() = %d entries, want 1 after rejected batch", len(r.Plugins()))
	}
}

func TestDuplicateLogicalNameWithinBatch(t *testing.T) {
	r := New()
	if err := r.InjectOrder([]string{"a", "b"}); err != nil {
		t.Fatal(err)
	}
	err := r.InjectPlugins(map[string]plugin.Plugin{
		"a": newFake("a", "click"),
		"b": newFake("b", "click"),
	})
	if !errors.Is(err, ErrDuplicateLogicalName) {
		t.Errorf("InjectPlugins error = %v, want ErrDuplicateLogicalName", err)
	}
	if r.ConfigFor("click") != nil {
		t.Error("partial state observable after in-batch collision")
	}
}

func TestPluginsReturnedInInjectedOrder(t *testing.T) {
	r := New()
	if err := r.InjectOrder([]string{"first", "second", "third"}); err != nil {
		t.Fatal(err)
	}
	// Inject out of order across two batches.
	if err := r.InjectPlugins(map[string]plugin.Plugin{"third": newFake("third", "c")}); err != nil {
		t.Fatal(err)
	}
	if err := r.InjectPlugins(map[string]plugin.Plugin{
		"first":  newFake("first", "a"),
		"second": newFake("second", "b"),
	}); err != nil {
		t.Fatal(err)
	}

	got := r.Plugins()
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("Plugins() = %d entries, want %d", len(got), len(want))
	}
	for i, p := range got {
		if p.Name() != want[i] {
			t.Errorf("Plugins()[%d] = %q, want %q", i, p.Name(), want[i])
		}
	}
}

func TestConfigLookups(t *testing.T) {
	r := New()
	if err := r.InjectOrder([]string{"a"}); err != nil {
		t.Fatal(err)
	}
	if err := r.InjectPlugins(map[string]plugin.Plugin{"a": newFake("a", "click")}); err != nil {
		t.Fatal(err)
	}

	cfg := r.ConfigFor("click")
	if cfg == nil || cfg.Logical != "click" {
		t.Fatalf("ConfigFor(click) = %v", cfg)
	}
	deps := r.NativeDependenciesFor("click")
	if len(deps) != 1 || deps[0] != synthetic.KindClick {
		t.Errorf("NativeDependenciesFor(click) = %v, want [click]", deps)
	}
	if r.ConfigFor("missing") != nil {
		t.Error("ConfigFor(missing) should be nil")
	}
}

func TestReset(t *testing.T) {
	r := New()
	if err := r.InjectOrder([]string{"a"}); err != nil {
		t.Fatal(err)
	}
	if err := r.InjectPlugins(map[string]plugin.Plugin{"a": newFake("a", "click")}); err != nil {
		t.Fatal(err)
	}

	r.Reset()
	if r.ConfigFor("click") != nil {
		t.Error("Reset should clear the config table")
	}
	if err := r.InjectOrder([]string{"x"}); err != nil {
		t.Errorf("InjectOrder after Reset failed: %v", err)
	}
}
