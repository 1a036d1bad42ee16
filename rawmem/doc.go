/*
Package rawmem manages uninitialized element storage for container types.

A Memory owns a contiguous block sized for a fixed number of elements, but it
has no notion of which slots hold live values — liveness is tracked entirely
by the owning container. This separation of capacity management from liveness
tracking is the backbone of the vector package: the buffer hands out slot
addresses, the container decides what lives where.

Memory is an ownership type: it may be moved or swapped, never copied (a raw
buffer cannot know which elements it would have to duplicate).

Status

Part of a reimplementation of a classic dynamic-array exercise.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package rawmem

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'advector.rawmem'.
func tracer() tracing.Trace {
	return tracing.Select("advector.rawmem")
}
