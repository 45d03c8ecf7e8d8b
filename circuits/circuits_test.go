package circuits

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcfold/arcfold/field"
	"github.com/arcfold/arcfold/r1cs"
)

func TestHashCheckIndexProveVerify(t *testing.T) {
	hc := &HashCheck{A: field.Zero(), B: field.One()}
	pk, err := r1cs.Index(hc)
	require.NoError(t, err)

	proof, err := r1cs.Prove(pk, hc)
	require.NoError(t, err)
	require.True(t, r1cs.Verify(pk, proof.Instance.Input, proof))
}

func TestChainProveAdvancesState(t *testing.T) {
	c := NewChain(field.Zero(), field.One())
	pk, err := r1cs.Index(c)
	require.NoError(t, err)

	a0, b0 := c.A, c.B
	proof1, err := r1cs.Prove(pk, c)
	require.NoError(t, err)
	require.True(t, r1cs.Verify(pk, proof1.Instance.Input, proof1))
	require.False(t, field.Equal(c.A, a0) && field.Equal(c.B, b0))

	proof2, err := r1cs.Prove(pk, c)
	require.NoError(t, err)
	require.True(t, r1cs.Verify(pk, proof2.Instance.Input, proof2))
}
