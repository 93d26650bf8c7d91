package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if got := cfg.Plugins.Order; len(got) != 2 || got[0] != "classifier" || got[1] != "selection" {
		t.Errorf("default order = %v, want [classifier selection]", got)
	}
	if !cfg.Selection.NativeSelectionEvents {
		t.Error("native selection events should default on")
	}
	lvl, err := cfg.LogLevel()
	if err != nil || lvl != zerolog.InfoLevel {
		t.Errorf("default level = %v, %v, want info", lvl, err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[plugins]
order = ["classifier", "selection", "burst"]
disabled = ["selection"]
debug = true

[selection]
native_selection_events = false

[scripts]
paths = ["plugins/burst.lua"]

[logging]
level = "debug"
pretty = true
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(cfg.Plugins.Order) != 3 || cfg.Plugins.Order[2] != "burst" {
		t.Errorf("order = %v, want three entries ending in burst", cfg.Plugins.Order)
	}
	if !cfg.Plugins.Debug {
		t.Error("debug should be enabled")
	}
	if cfg.Selection.NativeSelectionEvents {
		t.Error("native selection events should be disabled")
	}
	if len(cfg.Scripts.Paths) != 1 || cfg.Scripts.Paths[0] != "plugins/burst.lua" {
		t.Errorf("script paths = %v", cfg.Scripts.Paths)
	}
	if lvl, _ := cfg.LogLevel(); lvl != zerolog.DebugLevel {
		t.Errorf("level = %v, want debug", lvl)
	}
}

func TestEnabled(t *testing.T) {
	cfg, err := Parse([]byte(`
[plugins]
order = ["classifier", "selection"]
disabled = ["selection"]
`))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		want bool
	}{
		{"classifier", true},
		{"selection", false},
		{"unknown", false},
	}
	for _, tt := range tests {
		if got := cfg.Enabled(tt.name); got != tt.want {
			t.Errorf("Enabled(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty order", "[plugins]\norder = []\n", ErrEmptyPluginOrder},
		{"duplicate plugin", "[plugins]\norder = [\"a\", \"a\"]\n", ErrDuplicatePlugin},
		{"bad level", "[logging]\nlevel = \"loud\"\n", ErrUnknownLogLevel},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.src))
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestParseRejectsMalformedTOML(t *testing.T) {
	if _, err := Parse([]byte("[plugins\norder = []")); err == nil {
		t.Error("malformed TOML should fail")
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(cfg.Plugins.Order) == 0 {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uievent.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"warn\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if lvl, _ := cfg.LogLevel(); lvl != zerolog.WarnLevel {
		t.Errorf("level = %v, want warn", lvl)
	}
}
