// Package option provides a generic Option type for optional values.
//
// An Option either holds a value (Some) or is empty (None). It replaces
// nil-based optionality with an immutable value type that supports
// transformation, filtering, and fallback without nil checks. The zero
// value of Option is None.
//
// Operations that introduce a new type, such as Map and FlatMap, are
// package-level functions because Go methods cannot declare additional type
// parameters.
package option

import (
	"fmt"

	"github.com/d-kuro/optional/internal/variant"
)

// Option represents an optional value.
type Option[T any] struct {
	v variant.Variant[T, variant.Unit]
}

var _ fmt.Stringer = Option[struct{}]{}

// Some creates an Option with a value.
func Some[T any](value T) Option[T] {
	return Option[T]{v: variant.Some[T, variant.Unit](value)}
}

// None creates an empty Option. It is identical to the zero value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr creates an Option from a pointer. A nil pointer becomes None;
// otherwise the pointed-to value is copied into a Some.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOk creates an Option from a value and a presence flag, adapting the
// comma-ok idiom of map lookups and type assertions.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.v.IsPresent()
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.v.IsPresent()
}

// Value returns the value and a boolean indicating presence.
func (o Option[T]) Value() (T, bool) {
	return o.v.Value()
}

// Unwrap returns the value or panics if empty.
func (o Option[T]) Unwrap() T {
	value, ok := o.v.Value()
	if !ok {
		panic("option: unwrap on None")
	}
	return value
}

// Expect returns the value or panics with the given message if empty.
func (o Option[T]) Expect(message string) T {
	value, ok := o.v.Value()
	if !ok {
		panic(message)
	}
	return value
}

// UnwrapOr returns the value or a default if empty.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if value, ok := o.v.Value(); ok {
		return value
	}
	return defaultValue
}

// UnwrapOrElse returns the value or calls a function to get a default. The
// function runs only when the Option is empty.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if value, ok := o.v.Value(); ok {
		return value
	}
	return f()
}

// UnwrapOrZero returns the value or the zero value of T if empty.
func (o Option[T]) UnwrapOrZero() T {
	value, _ := o.v.Value()
	return value
}

// Ptr returns a pointer to a copy of the value, or nil if empty.
func (o Option[T]) Ptr() *T {
	value, ok := o.v.Value()
	if !ok {
		return nil
	}
	return &value
}

// Or returns this Option if it has a value, otherwise an Option holding the
// alternative. The result always has a value.
func (o Option[T]) Or(alternative T) Option[T] {
	if o.v.IsPresent() {
		return o
	}
	return Some(alternative)
}

// Else returns this Option if it has a value, otherwise the other Option.
func (o Option[T]) Else(other Option[T]) Option[T] {
	if o.v.IsPresent() {
		return o
	}
	return other
}

// OrElse returns this Option if it has a value, otherwise calls the
// function. The function runs only when the Option is empty.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.v.IsPresent() {
		return o
	}
	return f()
}

// Filter returns the Option unchanged if it is empty or the predicate is
// satisfied, otherwise None. The predicate runs at most once, and only when
// a value is present.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	return Match(o,
		func(value T) Option[T] {
			if predicate(value) {
				return o
			}
			return None[T]()
		},
		None[T],
	)
}

// Match invokes onSome with the value when present and onNone otherwise.
// Exactly one callback runs.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if value, ok := o.v.Value(); ok {
		onSome(value)
	} else {
		onNone()
	}
}

// String returns "Some(<value>)" or "None", rendering the value with its
// default format.
func (o Option[T]) String() string {
	if value, ok := o.v.Value(); ok {
		return fmt.Sprintf("Some(%v)", value)
	}
	return "None"
}

// Match dispatches on the state of the Option, invoking onSome with the
// value when present and onNone otherwise. Exactly one callback runs, and
// its result is returned.
func Match[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	return variant.Match(o.v,
		onSome,
		func(variant.Unit) R { return onNone() },
	)
}

// Map transforms the value if present. The function runs only when a value
// is present.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	return Match(o,
		func(value T) Option[U] { return Some(f(value)) },
		None[U],
	)
}

// FlatMap transforms the value to another Option if present. The function's
// result is returned as is, so it decides presence.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	return Match(o, f, None[U])
}

// Flatten removes one level of nesting from an Option of Options.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	return FlatMap(o, func(inner Option[T]) Option[T] { return inner })
}
