package resolute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveSat(t *testing.T) {
	res := Solve([][]int{{1, 2}, {-1}})

	require.True(t, res.Sat)
	assert.False(t, res.Model[1])
	assert.True(t, res.Model[2])
	assert.Nil(t, res.Proof)
}

func TestSolveUnsat(t *testing.T) {
	res := Solve([][]int{{1, 2}, {-1}, {-2}})

	require.False(t, res.Sat)
	require.NotNil(t, res.Proof)
	assert.Equal(t, 0, res.Proof.Len())
}
