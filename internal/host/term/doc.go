// Package term adapts terminal input to the event pipeline.
//
// The host reads tcell key and mouse events, translates each into a
// native kind plus a JSON payload, and feeds the pipeline. Terminal
// input is poorer than a browser's: there are no key-release events and
// no native focus, so the host synthesizes key-up after every key press
// and exposes SetFocus for the application to drive focus from its own
// hit testing.
//
// Button numbering follows the convention the synthetic shapes expect:
// 0 primary, 1 middle, 2 secondary. A secondary-button release becomes
// context-menu rather than click.
package term
