package monoids

import "math"

// Min is the monoid of minima. Inf is its identity and has to be greater or
// equal to every value stored.
type Min[T Number] struct {
	Inf T
}

// Identity returns Inf.
func (m Min[T]) Identity() T { return m.Inf }

// Op returns the smaller of two values.
func (Min[T]) Op(left, right T) T { return min(left, right) }

// Max is the monoid of maxima. Floor is its identity and has to be less or
// equal to every value stored.
type Max[T Number] struct {
	Floor T
}

// Identity returns Floor.
func (m Max[T]) Identity() T { return m.Floor }

// Op returns the greater of two values.
func (Max[T]) Op(left, right T) T { return max(left, right) }

// --- Additive actions ------------------------------------------------------

// MinAdd is range-minimum with range-add. The identity is absorbing for
// additions, so empty aggregates stay empty.
type MinAdd[T Number] struct {
	Min[T]
}

// Noop returns 0.
func (MinAdd[T]) Noop() T { return 0 }

// Apply adds f to x.
func (a MinAdd[T]) Apply(f, x T) T {
	if x == a.Inf {
		return x
	}
	return x + f
}

// Compose adds two deltas.
func (MinAdd[T]) Compose(newer, older T) T { return newer + older }

// MaxAdd is range-maximum with range-add.
type MaxAdd[T Number] struct {
	Max[T]
}

// Noop returns 0.
func (MaxAdd[T]) Noop() T { return 0 }

// Apply adds f to x.
func (a MaxAdd[T]) Apply(f, x T) T {
	if x == a.Floor {
		return x
	}
	return x + f
}

// Compose adds two deltas.
func (MaxAdd[T]) Compose(newer, older T) T { return newer + older }

// --- Assignment ------------------------------------------------------------

// Assignment is an action overwriting values. The zero value does nothing.
type Assignment[T any] struct {
	Value T
	Set   bool
}

// Assign returns the action setting values to v.
func Assign[T any](v T) Assignment[T] {
	return Assignment[T]{Value: v, Set: true}
}

type assign[T Number] struct{}

func (assign[T]) Noop() Assignment[T] { return Assignment[T]{} }

func (assign[T]) Apply(f Assignment[T], x T) T {
	if f.Set {
		return f.Value
	}
	return x
}

// Compose lets the newer assignment win.
func (assign[T]) Compose(newer, older Assignment[T]) Assignment[T] {
	if newer.Set {
		return newer
	}
	return older
}

// MinAssign is range-minimum with range-assignment.
type MinAssign[T Number] struct {
	Min[T]
	assign[T]
}

// MaxAssign is range-maximum with range-assignment.
type MaxAssign[T Number] struct {
	Max[T]
	assign[T]
}

// IntMinAdd returns a MinAdd algebra for int64 with math.MaxInt64 as identity.
func IntMinAdd() MinAdd[int64] {
	return MinAdd[int64]{Min: Min[int64]{Inf: math.MaxInt64}}
}

// IntMaxAdd returns a MaxAdd algebra for int64 with math.MinInt64 as identity.
func IntMaxAdd() MaxAdd[int64] {
	return MaxAdd[int64]{Max: Max[int64]{Floor: math.MinInt64}}
}

// IntMinAssign returns a MinAssign algebra for int64 with math.MaxInt64 as identity.
func IntMinAssign() MinAssign[int64] {
	return MinAssign[int64]{Min: Min[int64]{Inf: math.MaxInt64}}
}

// IntMaxAssign returns a MaxAssign algebra for int64 with math.MinInt64 as identity.
func IntMaxAssign() MaxAssign[int64] {
	return MaxAssign[int64]{Max: Max[int64]{Floor: math.MinInt64}}
}
