// Package config loads pipeline configuration from TOML files.
//
// Configuration covers the plugin injection order, per-plugin settings,
// Lua script plugin paths, and logging. A missing file is not an error;
// Load falls back to defaults so a bare pipeline works out of the box.
package config
