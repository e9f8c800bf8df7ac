package lazyseg

import (
	"fmt"
	"math/bits"
)

// Tree is a lazy segment tree in bottom-up layout.
//
// M is the monoid value type, A the action type. Leaves occupy the slots
// [size, 2*size) of data, inner node k has children 2k and 2k+1, the root is
// at index 1. size is the smallest power of two not less than the length n
// given at construction; the leaves [n, size) are padding and always hold
// the identity.
//
// data[k] always reflects every action applied to node k, including lazy[k].
// lazy[k] is the action still to be pushed to the children of k. Leaves never
// carry a pending action.
//
// A Tree is not safe for concurrent use.
type Tree[M, A any] struct {
	cfg   Config[M, A]
	alg   Algebra[M, A]
	n     int // logical length
	size  int // number of leaf slots, a power of two
	log   int // height of the tree, size == 1<<log
	data  []M
	lazy  []A
	built bool
}

var _ RangeMonoid[int, int] = (*Tree[int, int])(nil)

// New creates a tree for n elements, all set to the identity of the
// configured algebra.
//
// Elements may be initialized with Set before the first query; aggregates are
// computed by Build, which will be called implicitly if clients do not.
func New[M, A any](cfg Config[M, A], n int) (*Tree[M, A], error) {
	if err := Validate(cfg, n); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	log := bits.Len(uint(n - 1))
	size := 1 << log
	t := &Tree[M, A]{
		cfg:  cfg,
		alg:  cfg.Algebra,
		n:    n,
		size: size,
		log:  log,
		data: make([]M, 2*size),
		lazy: make([]A, 2*size),
	}
	id, noop := t.alg.Identity(), t.alg.Noop()
	for i := range t.data {
		t.data[i] = id
		t.lazy[i] = noop
	}
	tracer().Debugf("lazyseg: new tree n=%d, leaf slots=%d", n, size)
	return t, nil
}

// FromValues creates a tree holding a copy of values and builds it.
func FromValues[M, A any](cfg Config[M, A], values []M) (*Tree[M, A], error) {
	t, err := New(cfg, len(values))
	if err != nil {
		return nil, err
	}
	copy(t.data[t.size:], values)
	t.Build()
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[M, A]) Config() Config[M, A] {
	return t.cfg
}

// Len returns the number of elements of the tree.
func (t *Tree[M, A]) Len() int {
	return t.n
}

// Capacity returns the number of leaf slots, i.e. Len rounded up to a power
// of two.
func (t *Tree[M, A]) Capacity() int {
	return t.size
}

// Built reports whether aggregates have been computed.
func (t *Tree[M, A]) Built() bool {
	return t.built
}

// Set assigns value to the element at index.
//
// Before the tree is built, this just stores the value. Afterwards pending
// actions above the leaf are pushed down first, so that they will not be
// applied to the new value later, and the ancestors are recomputed.
func (t *Tree[M, A]) Set(index int, value M) error {
	if index < 0 || index >= t.n {
		tracer().Debugf("lazyseg: rejected Set(%d), length is %d", index, t.n)
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, t.n)
	}
	p := index + t.size
	if !t.built {
		t.data[p] = value
		return nil
	}
	t.pushAbove(p)
	t.data[p] = value
	t.lazy[p] = t.alg.Noop()
	t.updateAbove(p)
	return nil
}

// Get returns the fully resolved value of the element at index.
func (t *Tree[M, A]) Get(index int) (M, error) {
	if index < 0 || index >= t.n {
		tracer().Debugf("lazyseg: rejected Get(%d), length is %d", index, t.n)
		return t.alg.Identity(), fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, t.n)
	}
	t.ensureBuilt()
	p := index + t.size
	t.pushAbove(p)
	return t.data[p], nil
}

// Build computes the aggregates of all inner nodes from the leaves.
// It is a no-op for a tree which has already been built.
func (t *Tree[M, A]) Build() {
	if t.built {
		return
	}
	for k := t.size - 1; k >= 1; k-- {
		t.update(k)
	}
	t.built = true
	tracer().Debugf("lazyseg: built tree with %d leaf slots", t.size)
}

// Query returns the product of the elements in r, in index order.
// An empty range yields the identity.
func (t *Tree[M, A]) Query(r Range) M {
	l, h := r.Resolve(t.n)
	if l >= h {
		return t.alg.Identity()
	}
	t.ensureBuilt()
	l += t.size
	h += t.size
	t.pushBoundaries(l, h)
	sml, smr := t.alg.Identity(), t.alg.Identity()
	for l < h {
		if l&1 == 1 {
			sml = t.alg.Op(sml, t.data[l])
			l++
		}
		if h&1 == 1 {
			h--
			smr = t.alg.Op(t.data[h], smr)
		}
		l >>= 1
		h >>= 1
	}
	return t.alg.Op(sml, smr)
}

// OperateRange applies f to every element in r. An empty range is a no-op.
func (t *Tree[M, A]) OperateRange(r Range, f A) {
	l, h := r.Resolve(t.n)
	if l >= h {
		return
	}
	t.ensureBuilt()
	l += t.size
	h += t.size
	t.pushBoundaries(l, h)
	for ll, hh := l, h; ll < hh; ll, hh = ll>>1, hh>>1 {
		if ll&1 == 1 {
			t.applyAt(ll, f)
			ll++
		}
		if hh&1 == 1 {
			hh--
			t.applyAt(hh, f)
		}
	}
	for i := 1; i <= t.log; i++ {
		if (l>>i)<<i != l {
			t.update(l >> i)
		}
		if (h>>i)<<i != h {
			t.update((h - 1) >> i)
		}
	}
}

// Values returns the fully resolved elements of the tree in a fresh slice.
func (t *Tree[M, A]) Values() []M {
	t.ensureBuilt()
	for k := 1; k < t.size; k++ {
		t.push(k)
	}
	values := make([]M, t.n)
	copy(values, t.data[t.size:t.size+t.n])
	return values
}

// --- Internals -------------------------------------------------------------

func (t *Tree[M, A]) ensureBuilt() {
	if !t.built {
		t.Build()
	}
}

// update recomputes the aggregate of inner node k from its children.
func (t *Tree[M, A]) update(k int) {
	t.data[k] = t.alg.Op(t.data[2*k], t.data[2*k+1])
}

// applyAt applies f to node k and, for inner nodes, records f as pending for
// the children of k.
func (t *Tree[M, A]) applyAt(k int, f A) {
	t.data[k] = t.alg.Apply(f, t.data[k])
	if k < t.size {
		t.lazy[k] = t.alg.Compose(f, t.lazy[k])
	}
}

// push hands the pending action of inner node k down to its children.
func (t *Tree[M, A]) push(k int) {
	assert(k < t.size, "lazyseg: push called for a leaf")
	t.applyAt(2*k, t.lazy[k])
	t.applyAt(2*k+1, t.lazy[k])
	t.lazy[k] = t.alg.Noop()
}

// pushAbove pushes the pending actions of all proper ancestors of node p,
// starting at the root.
func (t *Tree[M, A]) pushAbove(p int) {
	for i := t.log; i >= 1; i-- {
		t.push(p >> i)
	}
}

// updateAbove recomputes all proper ancestors of node p, bottom-up.
func (t *Tree[M, A]) updateAbove(p int) {
	for i := 1; i <= t.log; i++ {
		t.update(p >> i)
	}
}

// pushBoundaries pushes pending actions down to the nodes a range walk over
// the leaf interval [l, h) will read or modify. Only ancestors of the two
// boundary leaves whose subtrees are not completely inside the interval need
// to be touched.
func (t *Tree[M, A]) pushBoundaries(l, h int) {
	for i := t.log; i >= 1; i-- {
		if (l>>i)<<i != l {
			t.push(l >> i)
		}
		if (h>>i)<<i != h {
			t.push((h - 1) >> i)
		}
	}
}
