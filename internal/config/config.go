package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// Config is the root pipeline configuration.
type Config struct {
	Plugins   PluginsConfig   `toml:"plugins"`
	Selection SelectionConfig `toml:"selection"`
	Scripts   ScriptsConfig   `toml:"scripts"`
	Logging   LoggingConfig   `toml:"logging"`
}

// PluginsConfig controls which plugins run and in what order.
type PluginsConfig struct {
	// Order is the fixed injection order. Plugins not listed here
	// cannot be injected.
	Order []string `toml:"order"`

	// Disabled plugins stay in the order but are not injected.
	Disabled []string `toml:"disabled"`

	// Debug enables diagnostics for unrecognized native kinds.
	Debug bool `toml:"debug"`
}

// SelectionConfig tunes the selection plugin.
type SelectionConfig struct {
	// NativeSelectionEvents reports whether the host surfaces native
	// selection-change events. Legacy engines set this to false and rely
	// on the key-up path instead.
	NativeSelectionEvents bool `toml:"native_selection_events"`
}

// ScriptsConfig lists Lua plugin scripts to load at startup.
type ScriptsConfig struct {
	Paths []string `toml:"paths"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// Default returns the configuration used when no file is present:
// classifier then selection, native selection events on, info logging.
func Default() *Config {
	return &Config{
		Plugins: PluginsConfig{
			Order: []string{"classifier", "selection"},
		},
		Selection: SelectionConfig{
			NativeSelectionEvents: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML configuration file. A missing file yields the
// defaults; a present but invalid file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML configuration bytes, applying defaults for
// omitted sections, and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks invariants that TOML decoding cannot express.
func (c *Config) Validate() error {
	if len(c.Plugins.Order) == 0 {
		return ErrEmptyPluginOrder
	}
	seen := make(map[string]bool, len(c.Plugins.Order))
	for _, name := range c.Plugins.Order {
		if seen[name] {
			return fmt.Errorf("%w: %s", ErrDuplicatePlugin, name)
		}
		seen[name] = true
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// Enabled reports whether the named plugin should be injected.
func (c *Config) Enabled(name string) bool {
	for _, d := range c.Plugins.Disabled {
		if d == name {
			return false
		}
	}
	for _, n := range c.Plugins.Order {
		if n == name {
			return true
		}
	}
	return false
}

// LogLevel parses the configured logging level.
func (c *Config) LogLevel() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.Logging.Level)
	}
	return lvl, nil
}
