// Package classifier implements the stateless multi-event extraction
// plugin.
//
// It keeps a static table mapping native event kinds to a dispatch config
// (logical names split into interactive and non-interactive priority
// classes) and a shape selector (native kind to event-family shape). Every
// event it produces uses two-phase propagation.
//
// Platform-quirk filters reproduced here:
//   - a key-press whose decoded character code is zero is discarded
//     (suppresses spurious function-key events some platforms emit)
//   - a click-family event whose button code indicates the secondary
//     button is discarded (suppresses platforms that synthesize a click
//     on right-click)
//   - an unrecognized kind falls back to the base shape; with diagnostics
//     enabled, a kind missing from the known allow-list is reported as a
//     likely framework bug, but this is never fatal
package classifier
