package proof

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resolute-sat/resolute/lit"
)

func TestVerifyUnsatAcceptsValidProof(t *testing.T) {
	a := NewAxiom(lits(1))
	b := NewAxiom(lits(-1))
	empty := Resolve(a, b)

	assert.NoError(t, VerifyUnsat(empty, []*Axiom{a, b}))
}

func TestVerifyUnsatAcceptsEmptyAxiom(t *testing.T) {
	empty := NewAxiom(nil)

	assert.NoError(t, VerifyUnsat(empty, []*Axiom{empty}))
}

func TestVerifyUnsatRejectsNilProof(t *testing.T) {
	assert.Error(t, VerifyUnsat(nil, nil))
}

func TestVerifyUnsatRejectsNonEmptyRoot(t *testing.T) {
	a := NewAxiom(lits(1, 2))
	b := NewAxiom(lits(-1))
	r := Resolve(a, b)

	err := VerifyUnsat(r, []*Axiom{a, b})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not empty")
}

func TestVerifyUnsatRejectsForeignAxiom(t *testing.T) {
	a := NewAxiom(lits(1))
	b := NewAxiom(lits(-1))
	empty := Resolve(a, b)

	err := VerifyUnsat(empty, []*Axiom{a})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not part of the formula")
}

func TestVerifyUnsatRejectsSurvivingAssumption(t *testing.T) {
	a := NewAssumption(lit.NewFromInt(1))
	b := NewAxiom(lits(-1))
	empty := Resolve(a, b)

	err := VerifyUnsat(empty, []*Axiom{b})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assumption")
}

func TestVerifyUnsatRejectsTamperedClause(t *testing.T) {
	a := NewAxiom(lits(1, 2))
	b := NewAxiom(lits(-1))

	// Forge a step claiming the empty clause where resolution produces {2}.
	tampered := &Resolved{litSet: newLitSet(nil), left: a, right: b}

	err := VerifyUnsat(tampered, []*Axiom{a, b})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not follow")
}
