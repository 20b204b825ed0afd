// Package variant provides the tagged two-case container that backs the
// public option packages. A Variant is parameterized independently over the
// present payload and the absent payload, so the same state handling serves
// both the plain option and the reasoned option.
package variant

// Variant holds either a value or a reason for its absence. The field not
// selected by present is always zero, so two Variants in the same state
// compare equal with ==. The zero value is the absent state with a zero
// reason.
type Variant[T, E any] struct {
	value   T
	reason  E
	present bool
}

// Unit is the empty reason type used when absence carries no data.
type Unit struct{}

// Some creates a Variant holding a value.
func Some[T, E any](value T) Variant[T, E] {
	return Variant[T, E]{value: value, present: true}
}

// None creates an absent Variant carrying the given reason.
func None[T, E any](reason E) Variant[T, E] {
	return Variant[T, E]{reason: reason}
}

// IsPresent returns true if the Variant holds a value.
func (v Variant[T, E]) IsPresent() bool {
	return v.present
}

// Value returns the value and a boolean indicating presence.
func (v Variant[T, E]) Value() (T, bool) {
	return v.value, v.present
}

// Reason returns the reason and a boolean that is true when the Variant is
// absent.
func (v Variant[T, E]) Reason() (E, bool) {
	return v.reason, !v.present
}

// Match dispatches on the state of the Variant. Exactly one of the two
// callbacks runs, synchronously, and its result is returned.
func Match[T, E, R any](v Variant[T, E], onPresent func(T) R, onAbsent func(E) R) R {
	if v.present {
		return onPresent(v.value)
	}
	return onAbsent(v.reason)
}
