package proof

import (
	"fmt"

	"github.com/resolute-sat/resolute/lit"
)

// Resolve applies the resolution rule to c1 and c2: the result's literals
// are the union of both parents' minus every literal of a pivot variable,
// and the result records c1 and c2 as its parents. Every simultaneously
// complementary variable is removed in a single step rather than one at a
// time; VerifyUnsat re-runs the same rule, so proofs check out against the
// shapes this produces.
//
// Resolve panics when no variable occurs positively in one clause and
// negatively in the other. That is an engine bug in the caller, never an
// input error.
func Resolve(c1, c2 Clause) *Resolved {
	pivots := map[int]bool{}
	for _, p := range c1.Literals() {
		if c2.Has(p.Not()) {
			pivots[p.Index()] = true
		}
	}
	if len(pivots) == 0 {
		panic(fmt.Sprintf("proof: resolving %s and %s with no complementary literal", c1, c2))
	}

	lits := []lit.Lit{}
	for _, p := range c1.Literals() {
		if !pivots[p.Index()] {
			lits = append(lits, p)
		}
	}
	for _, p := range c2.Literals() {
		if !pivots[p.Index()] {
			lits = append(lits, p)
		}
	}
	return &Resolved{litSet: newLitSet(lits), left: c1, right: c2}
}
