// Package proof implements the clause hierarchy of a resolution proof:
// axioms from the input formula, assumptions hypothesized while branching,
// and clauses derived by the resolution rule. Derived clauses keep
// references to the clauses they were resolved from, so an empty clause
// doubles as an independently checkable proof of unsatisfiability.
package proof

import (
	"sort"
	"strings"

	"github.com/resolute-sat/resolute/lit"
)

// Clause is a set of literals together with its derivation history. The
// three implementations are Axiom, Assumption and Resolved. Clauses are
// immutable once constructed, so proof DAGs share ancestor nodes freely and
// are never copied.
type Clause interface {
	// Literals returns the clause's literals in sorted order. Callers must
	// not modify the returned slice.
	Literals() []lit.Lit
	// Len returns the number of literals in the clause.
	Len() int
	// Has reports whether the clause contains p.
	Has(p lit.Lit) bool
	// String implements the Stringer interface.
	String() string
}

// litSet holds a clause's literals sorted and deduplicated. Complementary
// pairs are kept; only resolution removes a variable's literals.
type litSet struct {
	lits []lit.Lit
}

func newLitSet(lits []lit.Lit) litSet {
	ls := make([]lit.Lit, len(lits))
	copy(ls, lits)
	sort.Slice(ls, func(i, j int) bool {
		return ls[i] < ls[j]
	})

	idx := 0
	for i, p := range ls {
		if i > 0 && p == ls[i-1] {
			continue
		}
		ls[idx] = p
		idx++
	}
	return litSet{lits: ls[:idx]}
}

// Literals returns the clause's literals in sorted order.
func (s litSet) Literals() []lit.Lit {
	return s.lits
}

// Len returns the number of literals in the clause.
func (s litSet) Len() int {
	return len(s.lits)
}

// Has reports whether the clause contains p.
func (s litSet) Has(p lit.Lit) bool {
	i := sort.Search(len(s.lits), func(i int) bool {
		return s.lits[i] >= p
	})
	return i < len(s.lits) && s.lits[i] == p
}

// String implements the Stringer interface.
func (s litSet) String() string {
	if len(s.lits) == 0 {
		return "[]"
	}
	litStrs := make([]string, len(s.lits))
	for i, p := range s.lits {
		litStrs[i] = p.String()
	}
	return strings.Join(litStrs, ",")
}

// Axiom is an original input clause. Axioms are the only leaves a finished
// unsatisfiability proof may contain.
type Axiom struct {
	litSet
}

// NewAxiom returns an axiom over the given literals. An empty literal set is
// legal and is by itself a complete proof of unsatisfiability.
func NewAxiom(lits []lit.Lit) *Axiom {
	return &Axiom{litSet: newLitSet(lits)}
}

// Assumption is a single-literal clause hypothesized by the search driver
// while branching. Proof rewriting treats assumptions as opaque leaves and
// removes the target assumption only where it appears as a parent of a
// resolution step, never by descending into it.
type Assumption struct {
	litSet
}

// NewAssumption returns an assumption asserting p.
func NewAssumption(p lit.Lit) *Assumption {
	return &Assumption{litSet: litSet{lits: []lit.Lit{p}}}
}

// Lit returns the assumed literal.
func (a *Assumption) Lit() lit.Lit {
	return a.lits[0]
}

// Resolved is a clause produced by the resolution rule. It records the two
// clauses it was resolved from, forming an immutable proof DAG rooted at
// axioms and assumptions.
type Resolved struct {
	litSet
	left  Clause
	right Clause
}

// Parents returns the two clauses this clause was resolved from.
func (r *Resolved) Parents() (Clause, Clause) {
	return r.left, r.right
}
