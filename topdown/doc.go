/*
Package topdown implements a recursive lazy segment tree.

The tree has the same semantics as lazyseg.Tree and satisfies
lazyseg.RangeMonoid, but walks the tree from the root for every operation and
pushes pending actions at every partially covered node it passes. This costs
more push operations than the bottom-up variant, but every step is local and
easy to verify. Tests use it as a reference for the bottom-up tree.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package topdown

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lazyseg'
func tracer() tracing.Trace {
	return tracing.Select("lazyseg")
}
