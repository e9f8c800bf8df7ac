package lazyseg

import "fmt"

// Check validates the structural invariants of the tree, using eq to compare
// monoid values and eqAction to compare actions. It does not modify the tree.
//
// This checker is intentionally strict and meant to be used in tests:
//   - padding leaves hold the identity,
//   - leaves never carry a pending action,
//   - in a built tree every inner node k satisfies
//     data[k] == Apply(lazy[k], Op(data[2k], data[2k+1])).
//
// The second condition only holds for algebras where Apply is a monoid
// homomorphism, which is a requirement of Action anyway.
func (t *Tree[M, A]) Check(eq func(a, b M) bool, eqAction func(a, b A) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if eq == nil || eqAction == nil {
		return fmt.Errorf("%w: missing equality", ErrInvalidConfig)
	}
	if len(t.data) != 2*t.size || len(t.lazy) != 2*t.size {
		return fmt.Errorf("%w: storage length mismatch", ErrInvalidConfig)
	}
	if t.size&(t.size-1) != 0 || t.size < t.n {
		return fmt.Errorf("%w: leaf slots %d invalid for length %d", ErrInvalidConfig, t.size, t.n)
	}
	id := t.alg.Identity()
	for p := t.size + t.n; p < 2*t.size; p++ {
		if !eq(t.data[p], id) {
			return fmt.Errorf("%w: padding leaf %d is not the identity", ErrInvalidConfig, p-t.size)
		}
	}
	noop := t.alg.Noop()
	for p := t.size; p < 2*t.size; p++ {
		if !eqAction(t.lazy[p], noop) {
			return fmt.Errorf("%w: leaf %d has a pending action", ErrInvalidConfig, p-t.size)
		}
	}
	if !t.built {
		return nil
	}
	for k := 1; k < t.size; k++ {
		want := t.alg.Apply(t.lazy[k], t.alg.Op(t.data[2*k], t.data[2*k+1]))
		if !eq(t.data[k], want) {
			return fmt.Errorf("%w: aggregate mismatch at node %d", ErrInvalidConfig, k)
		}
	}
	return nil
}
