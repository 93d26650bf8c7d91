// Package dispatch runs the event pipeline: one entry point fed by the
// host environment for every native event.
//
// Dispatch resolves the target instance through the injected tree adapter,
// invokes every registered plugin's ExtractEvents in the fixed injected
// order, collects the zero or more synthetic events they produce, and then
// invokes each event's accumulated capture chain (root to target) followed
// by its bubble chain (target to root). StopPropagation short-circuits the
// remaining entries of the current phase; stopping during capture also
// suppresses the bubble phase.
//
// After all events of a native event have been dispatched, every
// non-persistent event of that batch is released back to its pool. Release
// is deferred so it survives listener panics; the panic itself propagates
// to the dispatch caller. A listener may synchronously trigger a nested
// dispatch (for example by calling a focus-shifting host API); each batch
// releases only the events it collected, so the outer batch's in-flight
// events are never touched.
//
// The pipeline is single-threaded and run-to-completion. No operation
// suspends, there are no timeouts, and a stuck listener blocks the thread
// by design; serializing calls into the pipeline is the host's job.
package dispatch
