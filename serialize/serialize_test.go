package serialize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcfold/arcfold/accumulator"
	"github.com/arcfold/arcfold/circuits"
	"github.com/arcfold/arcfold/field"
	"github.com/arcfold/arcfold/params"
	"github.com/arcfold/arcfold/r1cs"
)

func TestVectorRoundtrip(t *testing.T) {
	v := []field.Element{field.FromUint64(1), field.FromUint64(2), field.FromUint64(3)}
	got, rest, err := UnmarshalVector(MarshalVector(v))
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, len(v), len(got))
	for i := range v {
		require.True(t, field.Equal(v[i], got[i]))
	}
}

func TestKeyRoundtrip(t *testing.T) {
	hc := &circuits.HashCheck{A: field.Zero(), B: field.One()}
	key, err := r1cs.Index(hc)
	require.NoError(t, err)

	got, rest, err := UnmarshalKey(MarshalKey(key))
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, key.Info, got.Info)
	require.Equal(t, len(key.A), len(got.A))
}

func TestNarkProofRoundtrip(t *testing.T) {
	hc := &circuits.HashCheck{A: field.Zero(), B: field.One()}
	key, err := r1cs.Index(hc)
	require.NoError(t, err)
	nark, err := r1cs.Prove(key, hc)
	require.NoError(t, err)

	got, rest, err := UnmarshalNarkProof(MarshalNarkProof(nark))
	require.NoError(t, err)
	require.Empty(t, rest)
	require.True(t, field.Equal(nark.Commitment, got.Commitment))
	require.Equal(t, len(nark.Instance.Input), len(got.Instance.Input))
}

func TestInstanceWitnessRoundtrip(t *testing.T) {
	hc := &circuits.HashCheck{A: field.Zero(), B: field.One()}
	key, err := r1cs.Index(hc)
	require.NoError(t, err)

	inst, wit, err := accumulator.Zero(key.Info.NumVariables())
	require.NoError(t, err)

	gotInst, rest, err := UnmarshalInstance(MarshalInstance(&inst))
	require.NoError(t, err)
	require.Empty(t, rest)
	require.True(t, field.Equal(inst.C, gotInst.C))

	gotWit, rest, err := UnmarshalWitness(MarshalWitness(&wit))
	require.NoError(t, err)
	require.Empty(t, rest)
	require.True(t, field.Equal(wit.BlindedW, gotWit.BlindedW))
	require.True(t, field.Equal(wit.BlindedErr, gotWit.BlindedErr))
}

func TestFoldingProofRoundtrip(t *testing.T) {
	p := params.Default()
	hc := &circuits.HashCheck{A: field.Zero(), B: field.One()}
	key, err := r1cs.Index(hc)
	require.NoError(t, err)

	oldInst, oldWit, err := accumulator.Zero(key.Info.NumVariables())
	require.NoError(t, err)
	nark, err := r1cs.Prove(key, hc)
	require.NoError(t, err)

	_, _, proof, err := accumulator.Fold(key, p, oldInst, oldWit, nark)
	require.NoError(t, err)

	got, rest, err := UnmarshalFoldingProof(MarshalFoldingProof(proof))
	require.NoError(t, err)
	require.Empty(t, rest)
	require.True(t, field.Equal(proof.BlindedT, got.BlindedT))
	require.Equal(t, len(proof.Openings.WOld), len(got.Openings.WOld))
	for i := range proof.Openings.WOld {
		require.Equal(t, proof.Openings.WOld[i].LeafIndex, got.Openings.WOld[i].LeafIndex)
		require.True(t, field.Equal(proof.Openings.WOld[i].LeafValue, got.Openings.WOld[i].LeafValue))
	}
}

func TestUnmarshalVectorTruncated(t *testing.T) {
	_, _, err := UnmarshalVector([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrTruncated)
}
