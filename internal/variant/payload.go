package variant

import (
	"hash/maphash"
	"reflect"
)

// Hash values are stable within a process and vary between processes,
// following hash/maphash seeding.
var seed = maphash.MakeSeed()

// Payload hash sentinels. A nil payload cannot be hashed by content, so each
// position maps it to a fixed value: a nil present value hashes to 1, while a
// nil reason hashes to 0, the same as bare absence.
const (
	HashAbsent   uint64 = 0
	HashNilValue uint64 = 1
)

// IsNil reports whether v is nil or holds a nil pointer, map, slice,
// channel, or function.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// ValueEqual reports whether two payloads are equal. Two nil payloads are
// equal regardless of their dynamic types; a nil payload never equals a
// non-nil one; otherwise == decides.
func ValueEqual[V comparable](a, b V) bool {
	aNil, bNil := IsNil(a), IsNil(b)
	if aNil || bNil {
		return aNil && bNil
	}
	return a == b
}

// HashValue returns the hash of a present payload, consistent with
// ValueEqual: nil payloads hash to HashNilValue and equal payloads hash
// equal.
func HashValue[V comparable](v V) uint64 {
	if IsNil(v) {
		return HashNilValue
	}
	return maphash.Comparable(seed, v)
}

// HashReason returns the hash of an absence reason, consistent with
// ValueEqual: nil reasons hash to HashAbsent and equal reasons hash equal.
func HashReason[V comparable](v V) uint64 {
	if IsNil(v) {
		return HashAbsent
	}
	return maphash.Comparable(seed, v)
}
