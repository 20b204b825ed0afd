package option

import "github.com/d-kuro/optional/internal/variant"

// Equal reports whether two Options are equal: both None, or both Some with
// equal values. Two nil values compare equal regardless of their dynamic
// types, so Some[any](nil) equals Some[any]((*int)(nil)).
func Equal[T comparable](a, b Option[T]) bool {
	av, aok := a.Value()
	bv, bok := b.Value()
	if aok != bok {
		return false
	}
	if !aok {
		return true
	}
	return variant.ValueEqual(av, bv)
}

// Contains reports whether the Option holds the given value, using the same
// value equality as Equal.
func Contains[T comparable](o Option[T], value T) bool {
	held, ok := o.Value()
	return ok && variant.ValueEqual(held, value)
}

// Hash returns a hash consistent with Equal: None hashes to 0, a nil value
// hashes to 1, and any other value hashes by content. Hashes are stable
// within a process.
func Hash[T comparable](o Option[T]) uint64 {
	value, ok := o.Value()
	if !ok {
		return variant.HashAbsent
	}
	return variant.HashValue(value)
}
