package solver

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/resolute-sat/resolute/config"
	"github.com/resolute-sat/resolute/lit"
	"github.com/resolute-sat/resolute/proof"
	"github.com/resolute-sat/resolute/tribool"
)

const (
	VersionMajor = 1
	VersionMinor = 0
)

// Solver decides satisfiability of a CNF formula with a proof-carrying DPLL
// search. A satisfiable answer carries a model; an unsatisfiable answer
// carries an empty clause whose ancestry is a complete resolution proof.
type Solver struct {
	// config is the solver's configuration.
	config *config.Config
	// logger is the solver's logger.
	logger logrus.FieldLogger

	// Model Database Fields

	// userVars keeps a map of user-defined variables to internal variables.
	userVars map[int]int
	// internalVars keeps a map of internal variables to user-defined variables.
	internalVars map[int]int
	// axioms is the input formula.
	axioms []*proof.Axiom
	// assigns records each propagated literal's polarity, indexed on internal
	// variables. One map is shared by every branch of a Solve call; abandoned
	// branches may leave entries behind, which the branch that finally
	// succeeds either overwrites or carries as don't-cares.
	assigns map[int]bool
	// unsat is the empty clause derived by the last unsatisfiable Solve.
	unsat proof.Clause

	// Stats Fields

	// propagations keeps track of how many unit clauses were propagated.
	propagations int
	// decisions keeps track of how many branching assumptions were made.
	decisions int
	// conflicts keeps track of how many refuted branches were rewritten into
	// assumption-free proofs.
	conflicts int
}

// New returns a new initialized solver.
func New(c *config.Config) *Solver {
	return &Solver{
		config:       c,
		logger:       c.Logger,
		userVars:     map[int]int{},
		internalVars: map[int]int{},
		assigns:      map[int]bool{},
	}
}

// Version returns the version of the solver.
func Version() string {
	return fmt.Sprintf("%d.%d", VersionMajor, VersionMinor)
}

// AddClause adds an input clause given as DIMACS-style signed integers. An
// empty clause is legal and makes the formula trivially unsatisfiable.
func (s *Solver) AddClause(ps []int) {
	lits := make([]lit.Lit, 0, len(ps))
	for _, p := range ps {
		lits = append(lits, s.newVar(lit.NewFromInt(p)))
	}
	s.axioms = append(s.axioms, proof.NewAxiom(lits))
}

// Solve decides the formula, returning true when satisfiable. The model is
// then available from Answer, Model and Value; after an unsatisfiable
// answer the resolution proof is available from Proof.
func (s *Solver) Solve() bool {
	s.assigns = map[int]bool{}
	s.unsat = nil

	formula := make([]proof.Clause, len(s.axioms))
	for i, ax := range s.axioms {
		formula[i] = ax
	}
	s.logger.WithFields(logrus.Fields{
		"clauses": len(formula),
		"vars":    s.NVars(),
	}).Debug("Starting search")

	res := s.search(formula)
	if !res.sat {
		s.unsat = res.proof
		return false
	}
	if s.config.CheckModel {
		s.checkModel()
	}
	return true
}

// SolveMany enumerates up to mCount models, blocking each found model with a
// new clause before re-solving.
func (s *Solver) SolveMany(mCount uint) [][]int {
	models := [][]int{}

	for i := 0; i < int(mCount); i++ {
		if !s.Solve() {
			s.logger.Print("No more models exist")
			break
		}
		s.logger.Printf("Found %d/%d models", i+1, mCount)

		model := s.Answer()
		models = append(models, model)

		blocking := make([]int, len(model))
		for j, p := range model {
			blocking[j] = -p
		}
		s.AddClause(blocking)
	}
	return models
}

// Answer returns the model as sorted DIMACS-style signed integers, covering
// every variable the search fixed.
func (s *Solver) Answer() []int {
	ps := []int{}

	for v, val := range s.assigns {
		if val {
			ps = append(ps, s.internalVars[v])
		} else {
			ps = append(ps, -s.internalVars[v])
		}
	}
	sort.Slice(ps, func(i, j int) bool {
		i, j = ps[i], ps[j]

		if i < 0 {
			i = -i
		}
		if j < 0 {
			j = -j
		}
		return i < j
	})
	return ps
}

// Model returns the model as a map from user-defined variable to truth
// value. Variables the search never fixed are absent and may be set
// arbitrarily by the caller.
func (s *Solver) Model() map[int]bool {
	model := make(map[int]bool, len(s.assigns))
	for v, val := range s.assigns {
		model[s.internalVars[v]] = val
	}
	return model
}

// Value returns the model's value for a user-defined variable, or Undef when
// the search never fixed it.
func (s *Solver) Value(v int) tribool.Tribool {
	iv, ok := s.userVars[v]
	if !ok {
		return tribool.Undef
	}
	val, ok := s.assigns[iv]
	if !ok {
		return tribool.Undef
	}
	return tribool.NewFromBool(val)
}

// Proof returns the empty clause derived by the last unsatisfiable Solve, or
// nil after a satisfiable one. Following its parents re-traces the whole
// resolution proof down to axioms.
func (s *Solver) Proof() proof.Clause {
	return s.unsat
}

// Axioms returns the input formula.
func (s *Solver) Axioms() []*proof.Axiom {
	return s.axioms
}

// NVars returns the number of variables.
func (s *Solver) NVars() int {
	return len(s.userVars)
}

// NAxioms returns the number of input clauses.
func (s *Solver) NAxioms() int {
	return len(s.axioms)
}

// NPropagations returns the number of propagations that have occurred.
func (s *Solver) NPropagations() int {
	return s.propagations
}

// NDecisions returns the number of branching decisions made.
func (s *Solver) NDecisions() int {
	return s.decisions
}

// NConflicts returns the number of conflicts that have occurred.
func (s *Solver) NConflicts() int {
	return s.conflicts
}

// newVar registers a user-defined variable, referenced thereafter by its
// internal index.
func (s *Solver) newVar(p lit.Lit) lit.Lit {
	if _, ok := s.userVars[p.Var()]; !ok {
		idx := s.NVars()
		s.userVars[p.Var()] = idx
		s.internalVars[idx] = p.Var()
	}
	return lit.New(s.userVars[p.Var()], p.Sign())
}

// litValue returns p's value under the current assignment.
func (s *Solver) litValue(p lit.Lit) tribool.Tribool {
	val, ok := s.assigns[p.Index()]
	if !ok {
		return tribool.Undef
	}
	if p.Sign() {
		return tribool.NewFromBool(val).Not()
	}
	return tribool.NewFromBool(val)
}
