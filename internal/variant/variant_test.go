package variant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVariantStates(t *testing.T) {
	some := Some[int, string](42)
	require.True(t, some.IsPresent())

	value, ok := some.Value()
	require.True(t, ok)
	require.Equal(t, 42, value)

	reason, absent := some.Reason()
	require.False(t, absent)
	require.Equal(t, "", reason)

	none := None[int]("missing")
	require.False(t, none.IsPresent())

	value, ok = none.Value()
	require.False(t, ok)
	require.Equal(t, 0, value)

	reason, absent = none.Reason()
	require.True(t, absent)
	require.Equal(t, "missing", reason)
}

func TestVariantZeroValue(t *testing.T) {
	var v Variant[int, string]
	require.False(t, v.IsPresent())
	require.Equal(t, None[int](""), v)
}

func TestVariantComparable(t *testing.T) {
	require.Equal(t, Some[int, string](42), Some[int, string](42))
	require.Equal(t, None[int]("missing"), None[int]("missing"))
	require.NotEqual(t, Some[int, string](42), None[int, string](""))
}

func TestMatch(t *testing.T) {
	presentCalls := 0
	absentCalls := 0

	got := Match(Some[int, string](21),
		func(value int) int { presentCalls++; return value * 2 },
		func(string) int { absentCalls++; return -1 },
	)
	require.Equal(t, 42, got)
	require.Equal(t, 1, presentCalls)
	require.Equal(t, 0, absentCalls)

	got = Match(None[int]("missing"),
		func(value int) int { presentCalls++; return value * 2 },
		func(reason string) int {
			absentCalls++
			require.Equal(t, "missing", reason)
			return -1
		},
	)
	require.Equal(t, -1, got)
	require.Equal(t, 1, presentCalls)
	require.Equal(t, 1, absentCalls)
}

func TestIsNil(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]int
	var nilSlice []int
	var nilChan chan int
	var nilFunc func()
	nonNil := 42

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{name: "nil interface", v: nil, want: true},
		{name: "nil pointer", v: nilPtr, want: true},
		{name: "nil map", v: nilMap, want: true},
		{name: "nil slice", v: nilSlice, want: true},
		{name: "nil channel", v: nilChan, want: true},
		{name: "nil function", v: nilFunc, want: true},
		{name: "non-nil pointer", v: &nonNil, want: false},
		{name: "empty map", v: map[string]int{}, want: false},
		{name: "empty slice", v: []int{}, want: false},
		{name: "open channel", v: make(chan int), want: false},
		{name: "function", v: func() {}, want: false},
		{name: "zero int", v: 0, want: false},
		{name: "empty string", v: "", want: false},
		{name: "struct", v: struct{}{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsNil(tt.v))
		})
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a    any
		b    any
		want bool
	}{
		{name: "equal ints", a: 1, b: 1, want: true},
		{name: "unequal ints", a: 1, b: 2, want: false},
		{name: "equal strings", a: "x", b: "x", want: true},
		{name: "both nil interfaces", a: nil, b: nil, want: true},
		{name: "nil interface and nil pointer", a: nil, b: (*int)(nil), want: true},
		{name: "nil pointers of different types", a: (*int)(nil), b: (*string)(nil), want: true},
		{name: "nil interface and nil slice", a: nil, b: []int(nil), want: true},
		{name: "nil and zero int", a: nil, b: 0, want: false},
		{name: "nil and non-nil pointer", a: (*int)(nil), b: new(int), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ValueEqual(tt.a, tt.b))
		})
	}
}

func TestValueEqualTyped(t *testing.T) {
	require.True(t, ValueEqual(42, 42))
	require.False(t, ValueEqual(42, 43))

	var a, b *int
	require.True(t, ValueEqual(a, b))
	require.False(t, ValueEqual(a, new(int)))
}

func TestHashSentinels(t *testing.T) {
	require.Equal(t, HashNilValue, HashValue[any](nil))
	require.Equal(t, HashNilValue, HashValue[*int](nil))
	require.Equal(t, HashNilValue, HashValue[any]((*string)(nil)))
	require.Equal(t, HashAbsent, HashReason[any](nil))
	require.Equal(t, HashAbsent, HashReason[*int](nil))
}

func TestHashConsistentWithValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a    any
		b    any
	}{
		{name: "equal ints", a: 1, b: 1},
		{name: "equal strings", a: "x", b: "x"},
		{name: "nil interface and nil pointer", a: nil, b: (*int)(nil)},
		{name: "nil pointers of different types", a: (*int)(nil), b: (*string)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, ValueEqual(tt.a, tt.b))
			require.Equal(t, HashValue(tt.a), HashValue(tt.b))
			require.Equal(t, HashReason(tt.a), HashReason(tt.b))
		})
	}
}

func TestHashDeterministic(t *testing.T) {
	require.Equal(t, HashValue(42), HashValue(42))
	require.Equal(t, HashReason("denied"), HashReason("denied"))
	require.Equal(t, HashValue("access"), HashReason("access"))
}
