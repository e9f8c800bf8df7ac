package monoids

// Sized is a sum together with the number of elements it covers.
type Sized[T Number] struct {
	Sum T
	Len int
}

// Leaf returns the value of a single element v.
func Leaf[T Number](v T) Sized[T] {
	return Sized[T]{Sum: v, Len: 1}
}

// Leaves converts plain values to leaf values.
func Leaves[T Number](values ...T) []Sized[T] {
	out := make([]Sized[T], len(values))
	for i, v := range values {
		out[i] = Leaf(v)
	}
	return out
}

// SumAdd is range-sum with range-add.
type SumAdd[T Number] struct{}

// Identity returns the empty sum.
func (SumAdd[T]) Identity() Sized[T] { return Sized[T]{} }

// Op adds sums and lengths.
func (SumAdd[T]) Op(left, right Sized[T]) Sized[T] {
	return Sized[T]{Sum: left.Sum + right.Sum, Len: left.Len + right.Len}
}

// Noop returns 0.
func (SumAdd[T]) Noop() T { return 0 }

// Apply adds f to every element covered by x.
func (SumAdd[T]) Apply(f T, x Sized[T]) Sized[T] {
	return Sized[T]{Sum: x.Sum + f*T(x.Len), Len: x.Len}
}

// Compose adds two deltas.
func (SumAdd[T]) Compose(newer, older T) T { return newer + older }
