package rawmem

import "fmt"

// Memory is a block of storage for up to Cap() elements of type T. The zero
// value is the null state: no block, capacity 0, ready for use.
//
// Slots of a freshly allocated Memory hold zero values. Memory never treats a
// slot as live — constructing into slots and clearing them out again is the
// owner's business, and the owner must enforce the slot preconditions of At
// and Offset itself.
type Memory[T any] struct {
	block []T
}

// Alloc reserves storage for capacity elements. A capacity of 0 yields the
// null state without touching the allocator.
func Alloc[T any](capacity int) Memory[T] {
	assertThat(capacity >= 0, "negative capacity requested: %d", capacity)
	if capacity == 0 {
		return Memory[T]{}
	}
	tracer().Debugf("allocating block for %d elements", capacity)
	return Memory[T]{block: make([]T, capacity)}
}

// Cap returns the number of elements the block can hold.
func (m *Memory[T]) Cap() int {
	return len(m.block)
}

// Null reports whether m is in the null state, i.e. owns no block.
func (m *Memory[T]) Null() bool {
	return m.block == nil
}

// At returns the address of slot i. Precondition: i < Cap().
func (m *Memory[T]) At(i int) *T {
	assertThat(i >= 0 && i < len(m.block), "slot index out of range: %d with capacity %d", i, len(m.block))
	return &m.block[i]
}

// Offset returns the window of slots starting at i. Precondition: i ≤ Cap();
// asking for the position one past the last slot is legal and yields the
// empty window, matching the usual iteration idiom.
func (m *Memory[T]) Offset(i int) []T {
	assertThat(i >= 0 && i <= len(m.block), "slot offset out of range: %d with capacity %d", i, len(m.block))
	return m.block[i:]
}

// Swap exchanges the blocks of m and other in O(1). Never fails.
func (m *Memory[T]) Swap(other *Memory[T]) {
	m.block, other.block = other.block, m.block
}

// Move transfers ownership of the block to the returned Memory, leaving m in
// the null state.
func (m *Memory[T]) Move() Memory[T] {
	moved := Memory[T]{block: m.block}
	m.block = nil
	return moved
}

// Release lets go of the block without running any element teardown — the
// buffer does not know which slots are live. m is in the null state
// afterwards and may be reused.
func (m *Memory[T]) Release() {
	if m.block != nil {
		tracer().Debugf("releasing block of %d elements", len(m.block))
	}
	m.block = nil
}

// ---------------------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("rawmem: "+msg, msgargs...)
		panic(msg)
	}
}
