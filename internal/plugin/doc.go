// Package plugin declares the shared capability contract every extraction
// plugin implements.
//
// A plugin inspects one incoming native event and optionally produces one
// synthetic event. Two variants exist in-tree: classifier (stateless, a
// pure function of the current native event) and selection (stateful,
// remembering facts across several unrelated native events). The script
// subpackage hosts plugins authored in Lua behind the same contract.
//
// Stateful plugins keep private mutable state whose correctness depends on
// the pipeline's single-threaded, run-to-completion execution model. State
// transitions happen only as a side effect of ExtractEvents, never
// elsewhere.
package plugin
