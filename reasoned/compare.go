package reasoned

import "github.com/d-kuro/optional/internal/variant"

// Equal reports whether two Options are equal: both Some with equal values,
// or both None with equal reasons. Values and reasons use the same nil-aware
// equality as option.Equal, so two nil payloads compare equal regardless of
// their dynamic types.
func Equal[T, E comparable](a, b Option[T, E]) bool {
	av, aok := a.Value()
	bv, bok := b.Value()
	if aok != bok {
		return false
	}
	if aok {
		return variant.ValueEqual(av, bv)
	}
	ar, _ := a.Reason()
	br, _ := b.Reason()
	return variant.ValueEqual(ar, br)
}

// Contains reports whether the Option holds the given value, using the same
// value equality as Equal.
func Contains[T comparable, E any](o Option[T, E], value T) bool {
	held, ok := o.Value()
	return ok && variant.ValueEqual(held, value)
}

// Hash returns a hash consistent with Equal. A present Option hashes by its
// value, with nil values hashing to 1, and agrees with option.Hash. An empty
// Option hashes by its reason, with nil reasons hashing to 0. Hashes are
// stable within a process.
func Hash[T, E comparable](o Option[T, E]) uint64 {
	if value, ok := o.Value(); ok {
		return variant.HashValue(value)
	}
	reason, _ := o.Reason()
	return variant.HashReason(reason)
}
