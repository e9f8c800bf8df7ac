package lazyseg

import "fmt"

// Monoid defines how values are aggregated up the tree.
//
// For values x, y, z, Op should be associative:
//
//	Op(Op(x, y), z) == Op(x, Op(y, z))
//
// and Identity should be the neutral element:
//
//	Op(Identity(), x) == x == Op(x, Identity())
//
// Op is not required to be commutative; the tree always combines values in
// index order.
type Monoid[M any] interface {
	Identity() M
	Op(left, right M) M
}

// Action defines deferred updates on monoid values.
//
// For actions f, g and a value x:
//
//	Apply(Compose(f, g), x) == Apply(f, Apply(g, x))
//	Apply(Noop(), x) == x
//
// Compose receives the newer action first. Apply must be a homomorphism of
// the monoid, i.e.
//
//	Apply(f, Op(x, y)) == Op(Apply(f, x), Apply(f, y))
//
// which is what allows the tree to apply f to an aggregate instead of to
// every leaf below it.
type Action[M, A any] interface {
	Noop() A
	Apply(f A, x M) M
	Compose(newer, older A) A
}

// Algebra is the capability set a client supplies for a tree with values of
// type M and actions of type A.
type Algebra[M, A any] interface {
	Monoid[M]
	Action[M, A]
}

// Config configures a lazy segment tree.
type Config[M, A any] struct {
	// Algebra aggregates values and applies actions.
	Algebra Algebra[M, A]
}

func (cfg Config[M, A]) normalized() Config[M, A] {
	return cfg
}

func (cfg Config[M, A]) validate() error {
	cfg = cfg.normalized()
	if cfg.Algebra == nil {
		return fmt.Errorf("%w: algebra is required", ErrInvalidConfig)
	}
	return nil
}

// Validate checks a configuration and a requested tree length. It is used by
// the constructors of all tree variants.
func Validate[M, A any](cfg Config[M, A], n int) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	if n <= 0 {
		return fmt.Errorf("%w: length must be positive, is %d", ErrInvalidSize, n)
	}
	return nil
}

// RangeMonoid is the operational contract shared by the tree variants.
type RangeMonoid[M, A any] interface {
	Len() int
	Set(index int, value M) error
	Get(index int) (M, error)
	Build()
	Query(r Range) M
	OperateRange(r Range, f A)
	Values() []M
}
