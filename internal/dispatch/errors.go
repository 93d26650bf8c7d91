package dispatch

import "errors"

var (
	// ErrAdapterNotInjected is returned when Dispatch runs before a tree
	// adapter has been injected. This is a fatal invariant violation.
	ErrAdapterNotInjected = errors.New("tree adapter has not been injected")

	// ErrRegistryNotSet is returned when the pipeline has no registry.
	ErrRegistryNotSet = errors.New("plugin registry has not been set")
)
