package vector

import (
	"fmt"

	"github.com/ikarr/advanced-vector/rawmem"
)

// live returns the window of live slots [0,size).
func (v *Vector[T]) live() []T {
	return v.data.Offset(0)[:v.size]
}

// moveOut transfers the value out of a slot, leaving the slot vacant (zero).
// Vacant slots always hold zero values; the container relies on that when it
// extends liveness into them.
func (v *Vector[T]) moveOut(slot *T) T {
	var zero T
	if v.caps.move {
		moved := any(*slot).(Mover[T]).Move()
		*slot = zero
		return moved
	}
	value := *slot
	*slot = zero
	return value
}

// copyOf duplicates the value in a slot, through Clone when T has one.
func (v *Vector[T]) copyOf(slot *T) (T, error) {
	if v.caps.clone {
		return any(*slot).(Cloner[T]).Clone()
	}
	return *slot, nil
}

// destroy runs the teardown of a live value and vacates its slot.
func (v *Vector[T]) destroy(slot *T) {
	var zero T
	if v.caps.dispose {
		any(*slot).(Disposer).Dispose()
	}
	*slot = zero
}

func (v *Vector[T]) destroyAll(slots []T) {
	for i := range slots {
		v.destroy(&slots[i])
	}
}

// relocate transfers the live values in src into the same positions of dst.
// Movers and plain types are moved, which cannot fail and vacates src as it
// goes. Clone-only types are duplicated; a failing Clone undoes the clones
// made so far and leaves src untouched, so callers keep the strong
// guarantee by abandoning dst.
func (v *Vector[T]) relocate(src, dst []T) error {
	if v.caps.relocatesByClone() {
		for i := range src {
			clone, err := any(src[i]).(Cloner[T]).Clone()
			if err != nil {
				v.destroyAll(dst[:i])
				return fmt.Errorf("vector: clone while relocating element %d: %w", i, err)
			}
			dst[i] = clone
		}
		return nil
	}
	for i := range src {
		dst[i] = v.moveOut(&src[i])
	}
	return nil
}

// retire finishes a reallocation after every element has safely arrived in
// fresh: originals a clone-transfer left behind are destroyed, then the
// buffers are swapped and the old block released. Must not fail.
func (v *Vector[T]) retire(fresh *rawmem.Memory[T]) {
	if v.caps.relocatesByClone() {
		v.destroyAll(v.live())
	}
	v.data.Swap(fresh)
	fresh.Release()
}

// grownCap implements the growth policy shared by EmplaceBack and Emplace:
// double the current size, or start at 1.
func grownCap(size int) int {
	if size == 0 {
		return 1
	}
	return size * 2
}

// ---------------------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}
