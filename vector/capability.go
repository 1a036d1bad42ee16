package vector

// Element capabilities are probed from T's method set the first time a
// vector needs them. Capability methods must be declared on the value type,
// not the pointer type, since elements are stored by value.

// Cloner is implemented by element types whose duplication involves work
// that can fail, e.g. deep copies of owned resources. When T implements
// Cloner, every copy-semantics operation of the vector (Clone, Assign,
// clone-transfers during reallocation) goes through it and propagates its
// error.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Mover is implemented by element types with a dedicated ownership-transfer
// step. Move hands the value's resources to the returned element and must
// not fail. A type implementing Mover is relocated by moving even when it
// also implements Cloner.
//
// Plain types without either capability are moved by assignment, which
// cannot fail; such types never see an error from the vector's reallocating
// operations.
type Mover[T any] interface {
	Move() T
}

// Disposer is implemented by element types that hold resources needing
// explicit teardown. The vector calls Dispose exactly once for every live
// element it destroys (PopBack, Erase, shrinking Resize, Dispose of the
// vector, and originals left behind by a clone-transfer). Dispose is assumed
// not to fail.
type Disposer interface {
	Dispose()
}

type capabilities struct {
	done    bool
	clone   bool
	move    bool
	dispose bool
}

// probe inspects T's method set once; subsequent calls are free.
func probe[T any](c capabilities) capabilities {
	if c.done {
		return c
	}
	var zero T
	_, c.clone = any(zero).(Cloner[T])
	_, c.move = any(zero).(Mover[T])
	_, c.dispose = any(zero).(Disposer)
	c.done = true
	return c
}

// relocatesByClone reports whether buffer-to-buffer transfers have to
// duplicate elements instead of moving them: only when T has declared that
// cloning is its sole safe transfer (Cloner without Mover). Everything else
// counts as a non-failing move.
func (c capabilities) relocatesByClone() bool {
	return c.clone && !c.move
}
