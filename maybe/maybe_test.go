package maybe_test

import (
	"strconv"
	"testing"

	"github.com/ikarr/advanced-vector/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := maybe.Just(7) // infers type
	y := maybe.Nothing[int]()

	if v, ok := x.Unwrap(); !ok || v != 7 {
		t.Errorf("expected Just(7) to unwrap to 7, got %v, %v", v, ok)
	}
	if y.Present() {
		t.Errorf("expected Nothing to not be present")
	}
	if y.WithDefault(42) != 42 {
		t.Errorf("expected default 42 for Nothing")
	}
}

func TestMaybeMap(t *testing.T) {
	x := maybe.Map(strconv.Itoa, maybe.Just(7))
	if s := x.WithDefault("?"); s != "7" {
		t.Errorf("expected mapped value \"7\", got %q", s)
	}
	n := maybe.Map(strconv.Itoa, maybe.Nothing[int]())
	if n.Present() {
		t.Errorf("expected Nothing to map to Nothing")
	}
}

func TestMaybeAndThen(t *testing.T) {
	half := func(n int) maybe.Maybe[int] {
		if n%2 != 0 {
			return maybe.Nothing[int]()
		}
		return maybe.Just(n / 2)
	}
	if v := maybe.AndThen(half, maybe.Just(8)).WithDefault(-1); v != 4 {
		t.Errorf("expected AndThen(half, 8) to be 4, got %d", v)
	}
	if maybe.AndThen(half, maybe.Just(7)).Present() {
		t.Errorf("expected AndThen(half, 7) to be Nothing")
	}
}
