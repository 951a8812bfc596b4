package proof

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resolute-sat/resolute/lit"
)

func TestRemoveAssumptionLeavesAxiomUntouched(t *testing.T) {
	a := NewAssumption(lit.NewFromInt(1))
	ax := NewAxiom(lits(2, 3))

	assert.Same(t, ax, RemoveAssumption(a, ax))
}

func TestRemoveAssumptionLeavesOtherAssumptionUntouched(t *testing.T) {
	a := NewAssumption(lit.NewFromInt(1))
	other := NewAssumption(lit.NewFromInt(1))

	assert.Same(t, other, RemoveAssumption(a, other))
}

func TestRemoveAssumptionDiscardsAssumedParent(t *testing.T) {
	// Resolving the assumption 1 with the axiom ~1 proves the empty clause;
	// removing the assumption leaves the axiom as a proof of ~1.
	a := NewAssumption(lit.NewFromInt(1))
	ax := NewAxiom(lits(-1))
	empty := Resolve(a, ax)
	require.Equal(t, 0, empty.Len())

	assert.Same(t, ax, RemoveAssumption(a, empty))
}

func TestRemoveAssumptionReResolves(t *testing.T) {
	// ~1,2 and ~1,~2 refute the assumption 1 through two propagation
	// steps; stripping the assumption must re-resolve the join and yield
	// the derived unit ~1.
	a := NewAssumption(lit.NewFromInt(1))
	c1 := NewAxiom(lits(-1, 2))
	c2 := NewAxiom(lits(-1, -2))
	d1 := Resolve(c1, a)
	d2 := Resolve(c2, a)
	empty := Resolve(d2, d1)
	require.Equal(t, 0, empty.Len())

	learnt := RemoveAssumption(a, empty)
	assert.Equal(t, lits(-1), learnt.Literals())
}

func TestRemoveAssumptionIdempotentOnIndependentProof(t *testing.T) {
	a := NewAssumption(lit.NewFromInt(9))
	empty := Resolve(NewAxiom(lits(1)), NewAxiom(lits(-1)))

	rewritten := RemoveAssumption(a, empty)
	assert.Equal(t, empty.Literals(), rewritten.Literals())
}

func TestRemoveAssumptionFromItselfPanics(t *testing.T) {
	a := NewAssumption(lit.NewFromInt(1))

	assert.Panics(t, func() {
		RemoveAssumption(a, a)
	})
}
