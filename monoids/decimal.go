package monoids

import "github.com/shopspring/decimal"

// DecimalSum is a decimal sum together with the number of elements covered.
type DecimalSum struct {
	Sum decimal.Decimal
	Len int64
}

// DecimalLeaf returns the value of a single element d.
func DecimalLeaf(d decimal.Decimal) DecimalSum {
	return DecimalSum{Sum: d, Len: 1}
}

// Equal compares sums numerically, i.e. 1.50 equals 1.5.
func (s DecimalSum) Equal(other DecimalSum) bool {
	return s.Len == other.Len && s.Sum.Equal(other.Sum)
}

// DecimalSumAdd is range-sum with range-add on exact decimals.
type DecimalSumAdd struct{}

// Identity returns the empty sum.
func (DecimalSumAdd) Identity() DecimalSum { return DecimalSum{Sum: decimal.Zero} }

// Op adds sums and lengths.
func (DecimalSumAdd) Op(left, right DecimalSum) DecimalSum {
	return DecimalSum{Sum: left.Sum.Add(right.Sum), Len: left.Len + right.Len}
}

// Noop returns 0.
func (DecimalSumAdd) Noop() decimal.Decimal { return decimal.Zero }

// Apply adds f to every element covered by x.
func (DecimalSumAdd) Apply(f decimal.Decimal, x DecimalSum) DecimalSum {
	if f.IsZero() || x.Len == 0 {
		return x
	}
	return DecimalSum{Sum: x.Sum.Add(f.Mul(decimal.NewFromInt(x.Len))), Len: x.Len}
}

// Compose adds two deltas.
func (DecimalSumAdd) Compose(newer, older decimal.Decimal) decimal.Decimal {
	return newer.Add(older)
}
