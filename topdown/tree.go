package topdown

import (
	"fmt"
	"math/bits"

	"github.com/npillmayer/lazyseg"
)

// Tree is a lazy segment tree operated by recursive descent.
//
// Node 1 covers the leaf slots [0, size), node k with interval [l, r) has
// children 2k covering [l, mid) and 2k+1 covering [mid, r). As in
// lazyseg.Tree, data[k] already includes lazy[k]; lazy[k] is pending for
// the children only.
type Tree[M, A any] struct {
	cfg   lazyseg.Config[M, A]
	alg   lazyseg.Algebra[M, A]
	n     int
	size  int
	data  []M
	lazy  []A
	built bool
}

var _ lazyseg.RangeMonoid[int, int] = (*Tree[int, int])(nil)

// New creates a tree for n elements, all set to the identity.
func New[M, A any](cfg lazyseg.Config[M, A], n int) (*Tree[M, A], error) {
	if err := lazyseg.Validate(cfg, n); err != nil {
		return nil, err
	}
	size := 1 << bits.Len(uint(n-1))
	t := &Tree[M, A]{
		cfg:  cfg,
		alg:  cfg.Algebra,
		n:    n,
		size: size,
		data: make([]M, 2*size),
		lazy: make([]A, 2*size),
	}
	id, noop := t.alg.Identity(), t.alg.Noop()
	for i := range t.data {
		t.data[i] = id
		t.lazy[i] = noop
	}
	tracer().Debugf("topdown: new tree n=%d, leaf slots=%d", n, size)
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[M, A]) Config() lazyseg.Config[M, A] {
	return t.cfg
}

// Len returns the number of elements of the tree.
func (t *Tree[M, A]) Len() int {
	return t.n
}

// Capacity returns the number of leaf slots.
func (t *Tree[M, A]) Capacity() int {
	return t.size
}

// Built reports whether aggregates have been computed.
func (t *Tree[M, A]) Built() bool {
	return t.built
}

// Set assigns value to the element at index.
func (t *Tree[M, A]) Set(index int, value M) error {
	if index < 0 || index >= t.n {
		tracer().Debugf("topdown: rejected Set(%d), length is %d", index, t.n)
		return fmt.Errorf("%w: %d not in [0,%d)", lazyseg.ErrIndexOutOfRange, index, t.n)
	}
	if !t.built {
		t.data[t.size+index] = value
		return nil
	}
	t.set(1, 0, t.size, index, value)
	return nil
}

// Get returns the fully resolved value of the element at index.
func (t *Tree[M, A]) Get(index int) (M, error) {
	if index < 0 || index >= t.n {
		tracer().Debugf("topdown: rejected Get(%d), length is %d", index, t.n)
		return t.alg.Identity(), fmt.Errorf("%w: %d not in [0,%d)", lazyseg.ErrIndexOutOfRange, index, t.n)
	}
	return t.Query(lazyseg.Point(index)), nil
}

// Build computes all inner aggregates. It is a no-op for a built tree.
func (t *Tree[M, A]) Build() {
	if t.built {
		return
	}
	t.build(1)
	t.built = true
}

// Query returns the product of the elements in r, in index order.
func (t *Tree[M, A]) Query(r lazyseg.Range) M {
	l, h := r.Resolve(t.n)
	if l >= h {
		return t.alg.Identity()
	}
	t.Build()
	return t.query(1, 0, t.size, l, h)
}

// OperateRange applies f to every element in r.
func (t *Tree[M, A]) OperateRange(r lazyseg.Range, f A) {
	l, h := r.Resolve(t.n)
	if l >= h {
		return
	}
	t.Build()
	t.operate(1, 0, t.size, l, h, f)
}

// Values returns the fully resolved elements in a fresh slice.
func (t *Tree[M, A]) Values() []M {
	t.Build()
	t.pushAll(1)
	values := make([]M, t.n)
	copy(values, t.data[t.size:t.size+t.n])
	return values
}

// --- Internals -------------------------------------------------------------

func (t *Tree[M, A]) isLeaf(k int) bool {
	return k >= t.size
}

func (t *Tree[M, A]) build(k int) {
	if t.isLeaf(k) {
		return
	}
	t.build(2 * k)
	t.build(2*k + 1)
	t.data[k] = t.alg.Op(t.data[2*k], t.data[2*k+1])
}

func (t *Tree[M, A]) applyAt(k int, f A) {
	t.data[k] = t.alg.Apply(f, t.data[k])
	if !t.isLeaf(k) {
		t.lazy[k] = t.alg.Compose(f, t.lazy[k])
	}
}

// push moves the pending action of node k to its children. Leaves are
// always clean.
func (t *Tree[M, A]) push(k int) {
	if t.isLeaf(k) {
		return
	}
	t.applyAt(2*k, t.lazy[k])
	t.applyAt(2*k+1, t.lazy[k])
	t.lazy[k] = t.alg.Noop()
}

func (t *Tree[M, A]) pushAll(k int) {
	if t.isLeaf(k) {
		return
	}
	t.push(k)
	t.pushAll(2 * k)
	t.pushAll(2*k + 1)
}

func (t *Tree[M, A]) set(k, nl, nr, index int, value M) {
	if t.isLeaf(k) {
		t.data[k] = value
		return
	}
	t.push(k)
	mid := (nl + nr) / 2
	if index < mid {
		t.set(2*k, nl, mid, index, value)
	} else {
		t.set(2*k+1, mid, nr, index, value)
	}
	t.data[k] = t.alg.Op(t.data[2*k], t.data[2*k+1])
}

func (t *Tree[M, A]) query(k, nl, nr, l, h int) M {
	if h <= nl || nr <= l {
		return t.alg.Identity()
	}
	if l <= nl && nr <= h {
		return t.data[k]
	}
	t.push(k)
	mid := (nl + nr) / 2
	vl := t.query(2*k, nl, mid, l, h)
	vr := t.query(2*k+1, mid, nr, l, h)
	return t.alg.Op(vl, vr)
}

func (t *Tree[M, A]) operate(k, nl, nr, l, h int, f A) {
	if h <= nl || nr <= l {
		return
	}
	if l <= nl && nr <= h {
		t.applyAt(k, f)
		return
	}
	t.push(k)
	mid := (nl + nr) / 2
	t.operate(2*k, nl, mid, l, h, f)
	t.operate(2*k+1, mid, nr, l, h, f)
	t.data[k] = t.alg.Op(t.data[2*k], t.data[2*k+1])
}
