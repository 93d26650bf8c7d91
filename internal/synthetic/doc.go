// Package synthetic defines the portable event representation produced by
// the extraction pipeline.
//
// A synthetic event normalizes one native platform event into a typed,
// host-independent object. Each event belongs to a shape family (mouse,
// keyboard, focus, touch, drag, wheel, clipboard, UI, animation, transition,
// composition, or the generic base shape). A shape is a fixed ordered list
// of field descriptors merged over the base record at construction time;
// there is no inheritance chain between families.
//
// Native event payloads enter the pipeline as raw JSON. Field descriptors
// derive extension-field values from the payload with gjson paths, falling
// back to the descriptor's declared default when the path is absent.
//
// # Pooling
//
// Events are pooled per shape. Acquire pops a free instance (or allocates
// one), populates every field, and hands it out for exactly one dispatch.
// Release zeroes the fields and returns the instance to its shape's free
// list unless a listener called Persist, which removes the instance from
// the pool's return path permanently. Reading a non-persistent event after
// release is a usage error; it is detected and reported through the pool's
// diagnostic logger but never corrupts other in-flight events.
//
// The pool is guarded by the pipeline's single-threaded, run-to-completion
// execution model and takes no locks. A nested dispatch triggered from
// inside a listener is safe: in-flight instances are not on the free list,
// and each dispatch batch releases only the events it collected.
package synthetic
