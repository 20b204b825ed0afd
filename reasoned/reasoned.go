// Package reasoned provides an Option type whose absence carries a reason.
//
// A reasoned Option either holds a value of type T (Some) or is empty with
// an explanatory payload of type E (None). It composes like option.Option
// while threading the reason through the empty branch: transformations keep
// the reason, filtering replaces it, and fallbacks discard it. Conversion to
// and from a plain option.Option is explicit and lossy. The zero value is
// None with a zero reason.
//
// As in package option, operations that introduce a new type are
// package-level functions.
package reasoned

import (
	"fmt"

	"github.com/d-kuro/optional/internal/variant"
	"github.com/d-kuro/optional/option"
)

// Option represents an optional value with a reason for absence.
type Option[T, E any] struct {
	v variant.Variant[T, E]
}

var _ fmt.Stringer = Option[struct{}, struct{}]{}

// Some creates an Option with a value. Both type arguments must be named:
// Some[int, string](42).
func Some[T, E any](value T) Option[T, E] {
	return Option[T, E]{v: variant.Some[T, E](value)}
}

// None creates an empty Option carrying the given reason. The reason type is
// inferred: None[int]("missing").
func None[T, E any](reason E) Option[T, E] {
	return Option[T, E]{v: variant.None[T, E](reason)}
}

// WithReason promotes a plain option, attaching the reason when it is empty.
// A present option stays present and the reason is discarded.
func WithReason[T, E any](o option.Option[T], reason E) Option[T, E] {
	if value, ok := o.Value(); ok {
		return Some[T, E](value)
	}
	return None[T](reason)
}

// IsSome returns true if the Option contains a value.
func (o Option[T, E]) IsSome() bool {
	return o.v.IsPresent()
}

// IsNone returns true if the Option is empty.
func (o Option[T, E]) IsNone() bool {
	return !o.v.IsPresent()
}

// Value returns the value and a boolean indicating presence.
func (o Option[T, E]) Value() (T, bool) {
	return o.v.Value()
}

// Reason returns the reason and a boolean that is true when the Option is
// empty. A present Option has no reason.
func (o Option[T, E]) Reason() (E, bool) {
	return o.v.Reason()
}

// Unwrap returns the value or panics with the rendered reason if empty.
func (o Option[T, E]) Unwrap() T {
	value, ok := o.v.Value()
	if !ok {
		reason, _ := o.v.Reason()
		panic(fmt.Sprintf("reasoned: unwrap on None(%v)", reason))
	}
	return value
}

// UnwrapOr returns the value or a default if empty.
func (o Option[T, E]) UnwrapOr(defaultValue T) T {
	if value, ok := o.v.Value(); ok {
		return value
	}
	return defaultValue
}

// UnwrapOrElse returns the value or calls a function to get a default. The
// function runs only when the Option is empty.
func (o Option[T, E]) UnwrapOrElse(f func() T) T {
	if value, ok := o.v.Value(); ok {
		return value
	}
	return f()
}

// UnwrapOrZero returns the value or the zero value of T if empty.
func (o Option[T, E]) UnwrapOrZero() T {
	value, _ := o.v.Value()
	return value
}

// Or returns this Option if it has a value, otherwise an Option holding the
// alternative. The result always has a value; any reason is discarded.
func (o Option[T, E]) Or(alternative T) Option[T, E] {
	if o.v.IsPresent() {
		return o
	}
	return Some[T, E](alternative)
}

// Else returns this Option if it has a value, otherwise the other Option.
func (o Option[T, E]) Else(other Option[T, E]) Option[T, E] {
	if o.v.IsPresent() {
		return o
	}
	return other
}

// OrElse returns this Option if it has a value, otherwise calls the
// function. The function runs only when the Option is empty.
func (o Option[T, E]) OrElse(f func() Option[T, E]) Option[T, E] {
	if o.v.IsPresent() {
		return o
	}
	return f()
}

// Filter returns the Option unchanged if it is empty or the predicate is
// satisfied. A present value that fails the predicate is dropped and
// replaced by the given reason; an already empty Option keeps its original
// reason. The predicate runs at most once, and only when a value is present.
func (o Option[T, E]) Filter(predicate func(T) bool, reason E) Option[T, E] {
	return Match(o,
		func(value T) Option[T, E] {
			if predicate(value) {
				return o
			}
			return None[T](reason)
		},
		func(E) Option[T, E] { return o },
	)
}

// DropReason converts to a plain option, discarding any reason.
func (o Option[T, E]) DropReason() option.Option[T] {
	if value, ok := o.v.Value(); ok {
		return option.Some(value)
	}
	return option.None[T]()
}

// Match invokes onSome with the value when present and onNone with the
// reason otherwise. Exactly one callback runs.
func (o Option[T, E]) Match(onSome func(T), onNone func(E)) {
	if value, ok := o.v.Value(); ok {
		onSome(value)
	} else {
		reason, _ := o.v.Reason()
		onNone(reason)
	}
}

// String returns "Some(<value>)" or "None(<reason>)", rendering each with
// its default format.
func (o Option[T, E]) String() string {
	if value, ok := o.v.Value(); ok {
		return fmt.Sprintf("Some(%v)", value)
	}
	reason, _ := o.v.Reason()
	return fmt.Sprintf("None(%v)", reason)
}

// Match dispatches on the state of the Option, invoking onSome with the
// value when present and onNone with the reason otherwise. Exactly one
// callback runs, and its result is returned.
func Match[T, E, R any](o Option[T, E], onSome func(T) R, onNone func(E) R) R {
	return variant.Match(o.v, onSome, onNone)
}

// Map transforms the value if present. An empty Option keeps its reason,
// and the function runs only when a value is present.
func Map[T, E, U any](o Option[T, E], f func(T) U) Option[U, E] {
	return Match(o,
		func(value T) Option[U, E] { return Some[U, E](f(value)) },
		None[U, E],
	)
}

// FlatMap transforms the value to another Option if present. The function's
// result is returned as is, so it decides presence and any new reason; an
// empty input keeps its reason.
func FlatMap[T, E, U any](o Option[T, E], f func(T) Option[U, E]) Option[U, E] {
	return Match(o, f, None[U, E])
}

// MapReason transforms the reason if empty. A present Option keeps its
// value, and the function runs only when the Option is empty.
func MapReason[T, E, F any](o Option[T, E], f func(E) F) Option[T, F] {
	return Match(o,
		Some[T, F],
		func(reason E) Option[T, F] { return None[T](f(reason)) },
	)
}
