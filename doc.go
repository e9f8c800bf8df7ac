/*
Package lazyseg implements a lazy segment tree over a client-supplied monoid
and action algebra.

Lazy Segment Trees

A segment tree stores a sequence of monoid values in the leaves of a complete
binary tree and keeps, at every inner node, the monoid product of the leaves
below it. Range products are then answered by combining O(log n) nodes.

A lazy segment tree additionally supports applying an action to every element
of a range. Instead of touching every leaf, an action is applied to the
maximal nodes covering the range and remembered there as pending for the
node's children. Pending actions are pushed down only when an operation needs
to look below such a node.

Clients describe their domain by an Algebra[M, A]:

	Identity() M           neutral element of the monoid
	Op(left, right M) M    associative product, not necessarily commutative
	Noop() A               neutral action
	Apply(f A, x M) M      apply action f to an aggregate
	Compose(f, g A) A      action equivalent to applying g first, then f

Apply has to be independent of the number of leaves an aggregate covers. If
an action depends on that number (think "add 5 to every element" on a sum),
the monoid value has to carry the count (see package monoids).

Ranges are given as Range values with inclusive, exclusive or unbounded ends.
They are normalized to half-open intervals clipped to the length of the tree;
empty ranges are not an error.

Package lazyseg holds the iterative bottom-up variant. Package topdown
provides the recursive variant with identical semantics; it is simpler to
reason about and is used as a reference in tests.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package lazyseg

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer writes to trace with key 'lazyseg'
func tracer() tracing.Trace {
	return tracing.Select("lazyseg")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
