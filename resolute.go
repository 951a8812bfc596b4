// Package resolute provides a one-call interface to the proof-carrying DPLL
// solver in package solver. Clauses are given as DIMACS-style signed
// integers; an unsatisfiable answer carries an empty clause whose ancestry
// is an independently checkable resolution proof.
package resolute

import (
	"github.com/resolute-sat/resolute/config"
	"github.com/resolute-sat/resolute/proof"
	"github.com/resolute-sat/resolute/solver"
)

// Result is the outcome of a Solve call.
type Result struct {
	// Sat reports whether the formula is satisfiable.
	Sat bool
	// Model maps each fixed variable to its truth value when Sat. Variables
	// absent from the map may be set arbitrarily.
	Model map[int]bool
	// Proof is a derivation of the empty clause when not Sat.
	Proof proof.Clause
}

// Solve decides a CNF formula given as clauses of DIMACS-style signed
// integers.
func Solve(clauses [][]int) Result {
	s := solver.New(config.New())
	for _, c := range clauses {
		s.AddClause(c)
	}
	if s.Solve() {
		return Result{Sat: true, Model: s.Model()}
	}
	return Result{Proof: s.Proof()}
}
