package vector

import (
	"fmt"

	"github.com/ikarr/advanced-vector/rawmem"
)

// Emplace constructs a new element at logical position pos, shifting the
// elements [pos,Size()) one position towards the back, and returns the new
// element's address. Precondition: pos ≤ Size(); pos == Size() appends.
//
// Failure guarantees differ by path. When the buffer is full, the vector
// reallocates and gives the strong guarantee, exactly like EmplaceBack.
// When spare capacity exists the insert shifts in place, which gives only
// the basic guarantee: should an element operation fail partway the vector
// stays valid and destructible, but may hold duplicated values. That is the
// price of shifting without a spare buffer; for plain and Mover element
// types, whose moves cannot fail, the point is moot.
func (v *Vector[T]) Emplace(pos int, mk func() (T, error)) (*T, error) {
	assertThat(pos >= 0 && pos <= v.size, "insert position out of bounds: %d with size %d", pos, v.size)
	v.caps = probe[T](v.caps)
	if pos == v.size {
		return v.EmplaceBack(mk)
	}
	if v.size < v.data.Cap() {
		return v.emplaceShift(pos, mk)
	}
	return v.emplaceGrown(pos, mk)
}

// emplaceShift inserts within spare capacity: extend liveness by moving the
// last element into the first vacant slot, shift the rest back to front,
// and drop the new value into the gap.
func (v *Vector[T]) emplaceShift(pos int, mk func() (T, error)) (*T, error) {
	tmp, err := mk()
	if err != nil {
		return nil, fmt.Errorf("vector: emplace: %w", err)
	}
	window := v.data.Offset(0)
	window[v.size] = v.moveOut(&window[v.size-1])
	for i := v.size - 1; i > pos; i-- {
		window[i] = v.moveOut(&window[i-1])
	}
	window[pos] = tmp
	v.size++
	return &window[pos], nil
}

// emplaceGrown inserts into a full vector: the new element is constructed
// into the target slot of a fresh buffer, then the prefix and suffix are
// transferred around it. Strong guarantee.
func (v *Vector[T]) emplaceGrown(pos int, mk func() (T, error)) (*T, error) {
	tracer().Debugf("growing from capacity %d to %d", v.data.Cap(), grownCap(v.size))
	fresh := rawmem.Alloc[T](grownCap(v.size))
	elem, err := mk()
	if err != nil {
		fresh.Release()
		return nil, fmt.Errorf("vector: emplace: %w", err)
	}
	*fresh.At(pos) = elem
	src := v.live()
	dst := fresh.Offset(0)
	if err := v.relocate(src[:pos], dst[:pos]); err != nil {
		v.destroy(fresh.At(pos))
		fresh.Release()
		return nil, err
	}
	if err := v.relocate(src[pos:], dst[pos+1:]); err != nil {
		// only clone-transfers fail; the originals are still intact
		v.destroyAll(dst[:pos])
		v.destroy(fresh.At(pos))
		fresh.Release()
		return nil, err
	}
	v.retire(&fresh)
	v.size++
	return v.data.At(pos), nil
}

// Insert places a value at logical position pos; implemented in terms of
// Emplace and sharing its guarantees.
func (v *Vector[T]) Insert(pos int, value T) (*T, error) {
	return v.Emplace(pos, func() (T, error) { return value, nil })
}

// Erase removes the element at position pos, shifting the tail one position
// towards the front. Precondition: pos < Size(); erasing one past the end
// is a contract violation. Never reallocates; the erased element is
// destroyed, the vacated last slot ends up hollow.
func (v *Vector[T]) Erase(pos int) {
	assertThat(pos >= 0 && pos < v.size, "erase position out of bounds: %d with size %d", pos, v.size)
	v.caps = probe[T](v.caps)
	window := v.live()
	v.destroy(&window[pos])
	for i := pos; i < v.size-1; i++ {
		window[i] = v.moveOut(&window[i+1])
	}
	v.size--
}
