package solver

import (
	"github.com/resolute-sat/resolute/lit"
	"github.com/resolute-sat/resolute/proof"
)

// result is the outcome of one branch of the search: either a satisfying
// state or a derivation of the empty clause.
type result struct {
	sat   bool
	proof proof.Clause
}

// search runs the DPLL loop on formula: propagate to a fixed point, then
// branch on an assumption, and on conflict rewrite the refutation so it no
// longer depends on that assumption. A rewritten proof that is still empty
// refutes the formula regardless of the branch variable, so the opposite
// branch is never explored; otherwise the rewritten proof is a unit clause
// asserting the opposite polarity and joins the formula as an established
// fact rather than a hypothesis.
func (s *Solver) search(formula []proof.Clause) result {
	formula = s.propagate(formula)

	if len(formula) == 0 {
		return result{sat: true}
	}
	for _, c := range formula {
		if c.Len() == 0 {
			return result{proof: c}
		}
	}

	branch := s.selectLit(formula)
	s.decisions++
	s.logger.WithField("var", branch.Var()).Debug("Branching")

	assumption := proof.NewAssumption(branch)
	res := s.search(extend(formula, assumption))
	if res.sat {
		return res
	}
	s.conflicts++

	learnt := proof.RemoveAssumption(assumption, res.proof)
	if learnt.Len() == 0 {
		// Refuted without the assumption; the opposite branch cannot fare
		// better.
		s.logger.WithField("var", branch.Var()).Debug("Refuted independently of branch")
		return result{proof: learnt}
	}
	s.logger.WithField("clause", learnt).Debug("Derived opposite polarity")

	return s.search(extend(formula, learnt))
}

// selectLit picks the branching literal: the variable of the first literal
// of the first clause in formula order, asserted positively.
func (s *Solver) selectLit(formula []proof.Clause) lit.Lit {
	return lit.New(formula[0].Literals()[0].Index(), false)
}

// extend returns a copy of formula with c appended. Sibling branches must
// not share backing arrays, so the copy is explicit.
func extend(formula []proof.Clause, c proof.Clause) []proof.Clause {
	next := make([]proof.Clause, len(formula), len(formula)+1)
	copy(next, formula)
	return append(next, c)
}
