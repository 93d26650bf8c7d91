package registry

import "errors"

// Sentinel errors for startup injection misuse. Every one of these is a
// fatal configuration error; the process must not continue dispatching
// with an inconsistent registry.
var (
	// ErrOrderAlreadyInjected is returned when InjectOrder is called twice.
	ErrOrderAlreadyInjected = errors.New("plugin order has already been injected")

	// ErrOrderNotInjected is returned when plugins are injected before an order.
	ErrOrderNotInjected = errors.New("plugin order has not been injected")

	// ErrInvalidOrder is returned when the injected order is malformed,
	// for example naming the same plugin twice.
	ErrInvalidOrder = errors.New("invalid plugin order")

	// ErrPluginNotInOrder is returned when an injected plugin is not named
	// in the injected order.
	ErrPluginNotInOrder = errors.New("plugin is not named in the injected order")

	// ErrPluginAlreadyInjected is returned when a plugin name is injected
	// a second time.
	ErrPluginAlreadyInjected = errors.New("plugin has already been injected")

	// ErrDuplicateLogicalName is returned when two plugins claim the same
	// logical event name.
	ErrDuplicateLogicalName = errors.New("duplicate logical event name")

	// ErrNilPlugin is returned when a nil plugin is injected.
	ErrNilPlugin = errors.New("plugin cannot be nil")
)
