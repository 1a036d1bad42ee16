package vector

import (
	"fmt"

	"github.com/ikarr/advanced-vector/maybe"
	"github.com/ikarr/advanced-vector/rawmem"
)

// Vector is a growable contiguous sequence of elements of type T.
//
// Addresses handed out by Ref, EmplaceBack, Emplace and the window returned
// by Slice stay valid only until the next reallocating operation (Reserve,
// growing Resize, a growth-triggering append or insert) and, for positions
// at or behind an edit point, until the next Insert/Erase. This is part of
// the contract, not checked at runtime.
type Vector[T any] struct {
	data rawmem.Memory[T]
	size int
	caps capabilities
}

// New creates an empty vector. Without options no allocation takes place.
//
// Use it like this:
//
//	v := vector.New[int](vector.WithCapacity(64))
func New[T any](opts ...Option) *Vector[T] {
	var s settings
	for _, option := range opts {
		s = option.config(s)
	}
	v := &Vector[T]{caps: probe[T](capabilities{})}
	if s.capacity > 0 {
		v.data = rawmem.Alloc[T](s.capacity)
	}
	return v
}

// WithSize creates a vector holding n zero-value elements, with capacity
// exactly n.
func WithSize[T any](n int) *Vector[T] {
	assertThat(n >= 0, "negative size requested: %d", n)
	return &Vector[T]{
		data: rawmem.Alloc[T](n),
		size: n,
		caps: probe[T](capabilities{}),
	}
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(settings) settings
}

type settings struct {
	capacity int
}

// WithCapacity is an option to pre-reserve room for n elements.
func WithCapacity(n int) Option {
	conf := func(s settings) settings {
		if n > 0 {
			s.capacity = n
		}
		return s
	}
	return Option{config: conf}
}

// --- Queries ---------------------------------------------------------------

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Cap returns the number of elements the owned buffer can hold.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// At returns the element at position i. Precondition: i < Size().
func (v *Vector[T]) At(i int) T {
	assertThat(i >= 0 && i < v.size, "index out of bounds: %d with size %d", i, v.size)
	return *v.data.At(i)
}

// Ref returns the address of the element at position i, valid until the
// next reallocating or shifting operation. Precondition: i < Size().
func (v *Vector[T]) Ref(i int) *T {
	assertThat(i >= 0 && i < v.size, "index out of bounds: %d with size %d", i, v.size)
	return v.data.At(i)
}

// Set overwrites the element at position i. The previous value is replaced
// without teardown; callers owning Disposer elements handle the old value
// through Ref first. Precondition: i < Size().
func (v *Vector[T]) Set(i int, value T) {
	assertThat(i >= 0 && i < v.size, "index out of bounds: %d with size %d", i, v.size)
	*v.data.At(i) = value
}

// Get is the checked variant of At.
func (v *Vector[T]) Get(i int) maybe.Maybe[T] {
	if i < 0 || i >= v.size {
		return maybe.Nothing[T]()
	}
	return maybe.Just(*v.data.At(i))
}

// First returns the first element, if any.
func (v *Vector[T]) First() (T, bool) {
	if v.size == 0 {
		var zero T
		return zero, false
	}
	return *v.data.At(0), true
}

// Last returns the last element, if any.
func (v *Vector[T]) Last() (T, bool) {
	if v.size == 0 {
		var zero T
		return zero, false
	}
	return *v.data.At(v.size - 1), true
}

// Slice returns the window of live elements [0,Size()). The window aliases
// the vector's storage: it reflects in-place mutation, and it is invalidated
// like any other element address. Re-calling Slice after a mutation always
// yields the current state.
func (v *Vector[T]) Slice() []T {
	return v.live()
}

// Each calls f for every live element in logical order.
func (v *Vector[T]) Each(f func(i int, value T)) {
	for i, x := range v.live() {
		f(i, x)
	}
}

// --- Capacity control ------------------------------------------------------

// Reserve grows the buffer to hold exactly n elements. Calls with
// n ≤ Cap() are no-ops: capacity, size and element addresses all stay
// unchanged. A growing Reserve gives the strong guarantee — on a failed
// clone-transfer the vector is exactly as it was.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.Cap() {
		return nil
	}
	v.caps = probe[T](v.caps)
	tracer().Debugf("reserving capacity %d (was %d)", n, v.data.Cap())
	fresh := rawmem.Alloc[T](n)
	if err := v.relocate(v.live(), fresh.Offset(0)); err != nil {
		fresh.Release()
		return err
	}
	v.retire(&fresh)
	return nil
}

// Resize sets the number of live elements to n. Growing zero-constructs the
// newly exposed slots [Size(),n); shrinking destroys slots [n,Size()). The
// size is updated last.
func (v *Vector[T]) Resize(n int) error {
	assertThat(n >= 0, "negative size requested: %d", n)
	v.caps = probe[T](v.caps)
	switch {
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		// slots beyond the live window are vacant, i.e. already zero
		v.size = n
	case n < v.size:
		v.destroyAll(v.live()[n:])
		v.size = n
	}
	return nil
}

// --- Appending -------------------------------------------------------------

// EmplaceBack constructs a new element at the end of the vector and returns
// its address. On a full buffer the vector grows to twice its size (or 1
// from empty); the new element is constructed into the fresh buffer before
// any existing element is touched, so both a failed construction and a
// failed clone-transfer leave the vector unchanged (strong guarantee).
func (v *Vector[T]) EmplaceBack(mk func() (T, error)) (*T, error) {
	v.caps = probe[T](v.caps)
	if v.size == v.data.Cap() {
		return v.emplaceBackGrown(mk)
	}
	elem, err := mk()
	if err != nil {
		return nil, fmt.Errorf("vector: emplace: %w", err)
	}
	slot := v.data.At(v.size)
	*slot = elem
	v.size++
	return slot, nil
}

func (v *Vector[T]) emplaceBackGrown(mk func() (T, error)) (*T, error) {
	tracer().Debugf("growing from capacity %d to %d", v.data.Cap(), grownCap(v.size))
	fresh := rawmem.Alloc[T](grownCap(v.size))
	elem, err := mk()
	if err != nil {
		fresh.Release()
		return nil, fmt.Errorf("vector: emplace: %w", err)
	}
	*fresh.At(v.size) = elem
	if err := v.relocate(v.live(), fresh.Offset(0)); err != nil {
		// the freshly constructed element dies with the abandoned buffer
		v.destroy(fresh.At(v.size))
		fresh.Release()
		return nil, err
	}
	v.retire(&fresh)
	slot := v.data.At(v.size)
	v.size++
	return slot, nil
}

// PushBack appends a value. The argument is moved into the vector; failure
// can only come from a growth-triggering clone-transfer.
func (v *Vector[T]) PushBack(value T) error {
	_, err := v.EmplaceBack(func() (T, error) { return value, nil })
	return err
}

// PopBack destroys the last element. Precondition: Size() > 0. Never fails
// and never reallocates.
func (v *Vector[T]) PopBack() {
	assertThat(v.size > 0, "attempt to pop from empty vector")
	v.caps = probe[T](v.caps)
	v.size--
	v.destroy(v.data.At(v.size))
}
