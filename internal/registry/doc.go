// Package registry holds the process-wide plugin order and the global
// logical-name to dispatch-config table.
//
// The registry is built exactly once during startup injection and is
// immutable afterward: InjectOrder fixes the plugin execution order for
// the process lifetime, and InjectPlugins merges each plugin's event types
// into the global table. Misuse is fatal at startup, never at runtime --
// re-injecting the order, injecting a plugin missing from the order, or a
// logical-name collision between two plugins all fail before any partial
// state becomes observable.
//
// Tests may call Reset to clear and rebuild a registry; production code
// has no removal or unregistration path.
package registry
