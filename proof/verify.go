package proof

import (
	"github.com/pkg/errors"

	"github.com/resolute-sat/resolute/lit"
)

// VerifyUnsat checks that empty is a complete resolution proof of
// unsatisfiability over the given axioms: the root has no literals, every
// leaf is one of the axioms, no assumption survives, and re-running the
// resolution rule at every derived node reproduces exactly the literal set
// the node claims. Shared ancestors are checked once.
func VerifyUnsat(empty Clause, axioms []*Axiom) error {
	if empty == nil {
		return errors.New("no proof to verify")
	}
	if empty.Len() != 0 {
		return errors.Errorf("root clause %s is not empty", empty)
	}
	leaves := make(map[Clause]bool, len(axioms))
	for _, ax := range axioms {
		leaves[ax] = true
	}
	return verify(empty, leaves, map[Clause]bool{})
}

func verify(c Clause, leaves map[Clause]bool, seen map[Clause]bool) error {
	if seen[c] {
		return nil
	}
	seen[c] = true

	switch n := c.(type) {
	case *Axiom:
		if !leaves[c] {
			return errors.Errorf("axiom %s is not part of the formula", n)
		}
		return nil
	case *Assumption:
		return errors.Errorf("proof still depends on assumption %s", n)
	case *Resolved:
		if err := verify(n.left, leaves, seen); err != nil {
			return err
		}
		if err := verify(n.right, leaves, seen); err != nil {
			return err
		}
		if !complementary(n.left, n.right) {
			return errors.Errorf("parents %s and %s share no complementary literal", n.left, n.right)
		}
		if again := Resolve(n.left, n.right); !equalLits(again.Literals(), n.Literals()) {
			return errors.Errorf("clause %s does not follow from %s and %s", n, n.left, n.right)
		}
		return nil
	default:
		return errors.Errorf("unknown clause variant %T", c)
	}
}

// complementary reports whether some variable occurs with opposite signs
// across c1 and c2.
func complementary(c1, c2 Clause) bool {
	for _, p := range c1.Literals() {
		if c2.Has(p.Not()) {
			return true
		}
	}
	return false
}

func equalLits(a, b []lit.Lit) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
