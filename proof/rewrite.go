package proof

// RemoveAssumption rewrites the proof tree rooted at clause into one that
// does not depend on the given assumption. The result may be weaker than the
// original, carrying literals the assumption had resolved away. Rewriting a
// proof of the empty clause yields either another proof of the empty clause,
// when the assumption was not load-bearing, or a unit clause asserting the
// assumption's negation.
//
// Axioms and assumptions are returned unchanged. Where neither parent of a
// resolution step is the target assumption, both parents are rewritten and
// re-resolved: removing the assumption deeper in a subtree can change which
// variables are complementary at the join.
//
// RemoveAssumption panics when asked to rewrite the assumption itself.
func RemoveAssumption(assumption *Assumption, clause Clause) Clause {
	if clause == Clause(assumption) {
		panic("proof: removing an assumption from its own proof")
	}
	r, ok := clause.(*Resolved)
	if !ok {
		return clause
	}
	switch {
	case r.left == Clause(assumption):
		return RemoveAssumption(assumption, r.right)
	case r.right == Clause(assumption):
		return RemoveAssumption(assumption, r.left)
	default:
		return Resolve(
			RemoveAssumption(assumption, r.left),
			RemoveAssumption(assumption, r.right),
		)
	}
}
