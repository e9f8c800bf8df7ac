package script

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/npillmayer/lazyseg"
	"github.com/npillmayer/lazyseg/monoids"
	"github.com/npillmayer/lazyseg/topdown"
)

// Variant selects the tree implementation a script runs on.
type Variant string

// Tree variants.
const (
	Iterative Variant = "iterative"
	TopDown   Variant = "topdown"
)

// Machine is a tree bound to an algebra which reads and writes literals.
type Machine interface {
	Set(index int, value string) error
	Get(index int) (string, error)
	Build()
	Apply(r lazyseg.Range, action string) error
	Query(r lazyseg.Range) string
}

// Algebra is a named algebra scripts may be run with.
type Algebra struct {
	Name        string
	Description string
	open        func(v Variant, n int) (Machine, error)
}

// Open creates a tree with n elements for this algebra.
func (a Algebra) Open(v Variant, n int) (Machine, error) {
	return a.open(v, n)
}

type machine[M, A any] struct {
	tree   lazyseg.RangeMonoid[M, A]
	value  func(string) (M, error)
	action func(string) (A, error)
	format func(M) string
}

func (m machine[M, A]) Set(index int, value string) error {
	v, err := m.value(value)
	if err != nil {
		return err
	}
	return m.tree.Set(index, v)
}

func (m machine[M, A]) Get(index int) (string, error) {
	v, err := m.tree.Get(index)
	if err != nil {
		return "", err
	}
	return m.format(v), nil
}

func (m machine[M, A]) Build() {
	m.tree.Build()
}

func (m machine[M, A]) Apply(r lazyseg.Range, action string) error {
	f, err := m.action(action)
	if err != nil {
		return err
	}
	m.tree.OperateRange(r, f)
	return nil
}

func (m machine[M, A]) Query(r lazyseg.Range) string {
	return m.format(m.tree.Query(r))
}

func open[M, A any](
	v Variant, n int, alg lazyseg.Algebra[M, A],
	value func(string) (M, error), action func(string) (A, error), format func(M) string,
) (Machine, error) {
	cfg := lazyseg.Config[M, A]{Algebra: alg}
	var tree lazyseg.RangeMonoid[M, A]
	var err error
	switch v {
	case TopDown:
		tree, err = topdown.New(cfg, n)
	case Iterative, "":
		tree, err = lazyseg.New(cfg, n)
	default:
		return nil, fmt.Errorf("script: unknown tree variant %q", v)
	}
	if err != nil {
		return nil, err
	}
	return machine[M, A]{tree: tree, value: value, action: action, format: format}, nil
}

// --- Literals --------------------------------------------------------------

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrValue, s)
	}
	return v, nil
}

func parseAssign(s string) (monoids.Assignment[int64], error) {
	v, err := parseInt(s)
	return monoids.Assign(v), err
}

func parseBit(s string) (bool, error) {
	switch s {
	case "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	}
	return false, fmt.Errorf("%w: %q is not a bit", ErrValue, s)
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a decimal", ErrValue, s)
	}
	return d, nil
}

func formatExtremum(v int64) string {
	switch v {
	case math.MaxInt64:
		return "+inf"
	case math.MinInt64:
		return "-inf"
	}
	return strconv.FormatInt(v, 10)
}

// --- Registry --------------------------------------------------------------

var registry = map[string]Algebra{
	"min-add": {
		Description: "range minimum, add to range",
		open: func(v Variant, n int) (Machine, error) {
			return open(v, n, monoids.IntMinAdd(), parseInt, parseInt, formatExtremum)
		},
	},
	"max-add": {
		Description: "range maximum, add to range",
		open: func(v Variant, n int) (Machine, error) {
			return open(v, n, monoids.IntMaxAdd(), parseInt, parseInt, formatExtremum)
		},
	},
	"min-assign": {
		Description: "range minimum, assign to range",
		open: func(v Variant, n int) (Machine, error) {
			return open(v, n, monoids.IntMinAssign(), parseInt, parseAssign, formatExtremum)
		},
	},
	"max-assign": {
		Description: "range maximum, assign to range",
		open: func(v Variant, n int) (Machine, error) {
			return open(v, n, monoids.IntMaxAssign(), parseInt, parseAssign, formatExtremum)
		},
	},
	"sum-add": {
		Description: "range sum, add to range",
		open: func(v Variant, n int) (Machine, error) {
			value := func(s string) (monoids.Sized[int64], error) {
				x, err := parseInt(s)
				return monoids.Leaf(x), err
			}
			format := func(s monoids.Sized[int64]) string { return strconv.FormatInt(s.Sum, 10) }
			return open(v, n, monoids.SumAdd[int64]{}, value, parseInt, format)
		},
	},
	"flip-runs": {
		Description: "longest runs of 0s and 1s, flip range",
		open: func(v Variant, n int) (Machine, error) {
			value := func(s string) (monoids.Runs, error) {
				b, err := parseBit(s)
				return monoids.Bit(b), err
			}
			action := func(s string) (monoids.Flip, error) {
				b, err := parseBit(s)
				return monoids.Flip(b), err
			}
			format := func(r monoids.Runs) string {
				return fmt.Sprintf("zeros=%d ones=%d", r.Max0, r.Max1)
			}
			return open(v, n, monoids.FlipRuns{}, value, action, format)
		},
	},
	"decimal-sum": {
		Description: "exact decimal range sum, add to range",
		open: func(v Variant, n int) (Machine, error) {
			value := func(s string) (monoids.DecimalSum, error) {
				d, err := parseDecimal(s)
				return monoids.DecimalLeaf(d), err
			}
			format := func(s monoids.DecimalSum) string { return s.Sum.String() }
			return open(v, n, monoids.DecimalSumAdd{}, value, parseDecimal, format)
		},
	},
}

// Lookup returns the algebra registered under name.
func Lookup(name string) (Algebra, error) {
	a, ok := registry[name]
	if !ok {
		return Algebra{}, fmt.Errorf("%w: %q", ErrUnknownAlgebra, name)
	}
	a.Name = name
	return a, nil
}

// Algebras returns all registered algebras, ordered by name.
func Algebras() []Algebra {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	out := make([]Algebra, len(names))
	for i, name := range names {
		out[i], _ = Lookup(name)
	}
	return out
}
