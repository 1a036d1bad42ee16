package vector

import (
	"fmt"

	"github.com/ikarr/advanced-vector/rawmem"
)

// Clone duplicates the vector into a fresh buffer of capacity exactly
// Size(). Elements are duplicated through their Clone capability when they
// have one, by plain assignment otherwise. Strong guarantee: a failing
// element Clone destroys the partial copy and returns the error, leaving
// the receiver untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	v.caps = probe[T](v.caps)
	w := &Vector[T]{
		data: rawmem.Alloc[T](v.size),
		caps: v.caps,
	}
	src := v.live()
	dst := w.data.Offset(0)
	for i := range src {
		clone, err := v.copyOf(&src[i])
		if err != nil {
			w.destroyAll(dst[:i])
			w.data.Release()
			return nil, fmt.Errorf("vector: clone of element %d: %w", i, err)
		}
		dst[i] = clone
	}
	w.size = v.size
	return w, nil
}

// Assign replaces the receiver's contents with a copy of other's.
//
// When other does not fit into the current buffer, a full temporary copy is
// built and swapped in — strong guarantee at the cost of an allocation.
// Otherwise the copy happens element-wise in the existing buffer: the
// overlapping prefix is overwritten, extra source elements are constructed
// into the tail, extra own elements are destroyed. The in-place path avoids
// reallocation but gives only the basic guarantee if an element Clone
// fails partway.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	if v == other {
		return nil
	}
	v.caps = probe[T](v.caps)
	if other.size > v.data.Cap() {
		tmp, err := other.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Dispose()
		return nil
	}
	overlap := min(v.size, other.size)
	src := other.data.Offset(0)
	dst := v.data.Offset(0)
	for i := 0; i < overlap; i++ {
		clone, err := v.copyOf(&src[i])
		if err != nil {
			return fmt.Errorf("vector: assign of element %d: %w", i, err)
		}
		v.destroy(&dst[i])
		dst[i] = clone
	}
	for i := v.size; i < other.size; i++ {
		clone, err := v.copyOf(&src[i])
		if err != nil {
			// keep the prefix built so far; the vector stays valid
			v.size = i
			return fmt.Errorf("vector: assign of element %d: %w", i, err)
		}
		dst[i] = clone
	}
	if v.size > other.size {
		v.destroyAll(v.live()[other.size:])
	}
	v.size = other.size
	return nil
}

// Move transfers the receiver's buffer and elements to the returned vector
// in O(1). The receiver is left empty and reusable. Never fails.
func (v *Vector[T]) Move() *Vector[T] {
	w := &Vector[T]{
		data: v.data.Move(),
		size: v.size,
		caps: v.caps,
	}
	v.size = 0
	return w
}

// Swap exchanges contents with other in O(1), no allocation. Never fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.caps, other.caps = other.caps, v.caps
}

// Dispose destroys all live elements and releases the buffer. The vector is
// empty and reusable afterwards. Element types without the Disposer
// capability carry no teardown obligation, so dropping a vector of plain
// values without calling Dispose is fine.
func (v *Vector[T]) Dispose() {
	v.caps = probe[T](v.caps)
	v.destroyAll(v.live())
	v.size = 0
	v.data.Release()
}
