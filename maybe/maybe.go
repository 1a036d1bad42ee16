/*
Package maybe provides an optional-value type in the spirit of Elm's Maybe,
used by container packages of this module for checked accessors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package maybe

// Maybe holds either a value of type T or nothing. The zero value is
// Nothing.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Just wraps a present value.
func Just[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, ok: true}
}

// Nothing is the absent value for type T.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Present reports whether m holds a value.
func (m Maybe[T]) Present() bool {
	return m.ok
}

// Unwrap returns the held value, if present, in the comma-ok idiom.
func (m Maybe[T]) Unwrap() (T, bool) {
	return m.value, m.ok
}

// WithDefault returns the held value, or def if m is Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.ok {
		return m.value
	}
	return def
}

// Map applies f to a present value; Nothing passes through.
func Map[S, T any](f func(S) T, m Maybe[S]) Maybe[T] {
	if !m.ok {
		return Nothing[T]()
	}
	return Just(f(m.value))
}

// AndThen chains a computation that may itself come up empty.
func AndThen[S, T any](f func(S) Maybe[T], m Maybe[S]) Maybe[T] {
	if !m.ok {
		return Nothing[T]()
	}
	return f(m.value)
}
