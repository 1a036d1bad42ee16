/*
Package vector implements a growable contiguous container on top of raw
element storage, designed for use-cases similar to Go slices but with an
explicit split between capacity management and element liveness.

A Vector owns a rawmem.Memory block plus a count of live elements. Elements
at logical positions [0,size) are live; the remaining slots of the block are
vacant. Logical order equals physical order, appends are amortized O(1), and
every mutating operation documents which failure guarantee it gives (see the
Cloner, Mover and Disposer capability interfaces).

Vectors are single-owner values. Concurrent access without caller-provided
synchronization is not supported.

Status

Part of a reimplementation of a classic dynamic-array exercise.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'advector.vector'.
func tracer() tracing.Trace {
	return tracing.Select("advector.vector")
}
