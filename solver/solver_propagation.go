package solver

import (
	"fmt"

	"github.com/resolute-sat/resolute/proof"
)

// propagateUnit resolves a single unit clause against the formula: clauses
// containing the unit's literal are satisfied and dropped, clauses
// containing its negation are replaced by their resolvent with the unit, and
// the rest are kept unchanged.
func (s *Solver) propagateUnit(formula []proof.Clause, unit proof.Clause) []proof.Clause {
	if unit.Len() != 1 {
		panic(fmt.Sprintf("solver: propagating non-unit clause %s", unit))
	}
	p := unit.Literals()[0]

	next := make([]proof.Clause, 0, len(formula))
	for _, c := range formula {
		switch {
		case c.Has(p):
			s.logger.WithField("clause", c).Debug("Clause satisfied")
		case c.Has(p.Not()):
			next = append(next, proof.Resolve(c, unit))
		default:
			next = append(next, c)
		}
	}
	return next
}

// propagate runs unit propagation to a fixed point, recording each
// propagated literal's polarity in the assignment map.
func (s *Solver) propagate(formula []proof.Clause) []proof.Clause {
	for {
		units := []proof.Clause{}
		for _, c := range formula {
			if c.Len() == 1 {
				units = append(units, c)
			}
		}
		if len(units) == 0 {
			return formula
		}
		for _, unit := range units {
			formula = s.propagateUnit(formula, unit)

			p := unit.Literals()[0]
			s.assigns[p.Index()] = p.Pos()
			s.propagations++
			s.logger.WithField("lit", p).Debug("Propagated unit")
		}
	}
}
