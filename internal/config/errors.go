package config

import "errors"

var (
	// ErrEmptyPluginOrder is returned when the configured plugin order
	// lists no plugins.
	ErrEmptyPluginOrder = errors.New("plugin order is empty")

	// ErrDuplicatePlugin is returned when the configured plugin order
	// lists the same plugin twice.
	ErrDuplicatePlugin = errors.New("plugin listed twice in order")

	// ErrUnknownLogLevel is returned when the configured log level does
	// not name a zerolog level.
	ErrUnknownLogLevel = errors.New("unknown log level")
)
