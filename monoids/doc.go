/*
Package monoids provides some pre-manufactured algebras for lazy segment trees.

Every algebra type implements lazyseg.Algebra for a pair of value and action
types and may be used in a lazyseg.Config:

	tree, err := lazyseg.New(lazyseg.Config[int64, int64]{
		Algebra: monoids.IntMinAdd(),
	}, n)

Algebras whose actions depend on the number of elements covered (e.g. adding
to a sum) use a value type which carries that number, see Sized.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package monoids

import "golang.org/x/exp/constraints"

// Number is the set of types the numeric algebras work on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Equal compares two values with ==. It is handy as an equality for
// lazyseg.Tree.Check.
func Equal[M comparable](a, b M) bool {
	return a == b
}
