package accumulator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcfold/arcfold/circuits"
	"github.com/arcfold/arcfold/field"
	"github.com/arcfold/arcfold/params"
	"github.com/arcfold/arcfold/r1cs"
	"github.com/arcfold/arcfold/transcript"
)

func TestZeroAccumulatorDecides(t *testing.T) {
	hc := &circuits.HashCheck{A: field.Zero(), B: field.One()}
	key, err := r1cs.Index(hc)
	require.NoError(t, err)

	inst, wit, err := Zero(key.Info.NumVariables())
	require.NoError(t, err)
	require.True(t, Decide(key, inst, wit))
}

func TestSingleFoldVerifiesAndDecides(t *testing.T) {
	p := params.Default()
	hc := &circuits.HashCheck{A: field.Zero(), B: field.One()}
	key, err := r1cs.Index(hc)
	require.NoError(t, err)

	oldInst, oldWit, err := Zero(key.Info.NumVariables())
	require.NoError(t, err)

	nark, err := r1cs.Prove(key, hc)
	require.NoError(t, err)

	newInst, newWit, proof, err := Fold(key, p, oldInst, oldWit, nark)
	require.NoError(t, err)

	require.True(t, Verify(p, oldInst, oldWit, *newInst, *newWit, nark, proof))
	require.True(t, Decide(key, *newInst, *newWit))
}

func TestScalarConsistencyAfterFold(t *testing.T) {
	p := params.Default()
	hc := &circuits.HashCheck{A: field.Zero(), B: field.One()}
	key, err := r1cs.Index(hc)
	require.NoError(t, err)

	oldInst, oldWit, err := Zero(key.Info.NumVariables())
	require.NoError(t, err)
	nark, err := r1cs.Prove(key, hc)
	require.NoError(t, err)

	newInst, _, _, err := Fold(key, p, oldInst, oldWit, nark)
	require.NoError(t, err)

	r := transcript.DeriveScalar(p, nark.Commitment, oldWit.BlindedW)
	require.True(t, field.Equal(newInst.C, field.Add(oldInst.C, r)))
}

func TestFiveFoldChainDecides(t *testing.T) {
	p := params.Default()
	c := circuits.NewChain(field.Zero(), field.One())
	key, err := r1cs.Index(c)
	require.NoError(t, err)

	chain, err := NewChain(key, p)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := chain.Step(c)
		require.NoError(t, err)
	}
	require.True(t, chain.Decide())
}

func TestFiftyFoldChainDecides(t *testing.T) {
	p := params.Default()
	c := circuits.NewChain(field.Zero(), field.One())
	key, err := r1cs.Index(c)
	require.NoError(t, err)

	chain, err := NewChain(key, p)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		_, err := chain.Step(c)
		require.NoError(t, err)
	}
	require.True(t, chain.Decide())
}

func TestTamperedAccumulatorFailsDecide(t *testing.T) {
	p := params.Default()
	c := circuits.NewChain(field.Zero(), field.One())
	key, err := r1cs.Index(c)
	require.NoError(t, err)

	chain, err := NewChain(key, p)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := chain.Step(c)
		require.NoError(t, err)
	}

	tampered := chain.Instance()
	tampered.Err = append([]field.Element(nil), tampered.Err...)
	tampered.Err[0] = field.Add(tampered.Err[0], field.One())

	root, _, _, err := codewordCommit(tampered.W)
	require.NoError(t, err)
	errRoot, _, _, err := codewordCommit(tampered.Err)
	require.NoError(t, err)
	tamperedWit := Witness{BlindedW: root, BlindedErr: errRoot}

	require.False(t, Decide(key, tampered, tamperedWit))
}

func TestReplayedOldAccumulatorFailsVerify(t *testing.T) {
	p := params.Default()
	hc := &circuits.HashCheck{A: field.Zero(), B: field.One()}
	key, err := r1cs.Index(hc)
	require.NoError(t, err)

	oldInst, oldWit, err := Zero(key.Info.NumVariables())
	require.NoError(t, err)
	nark, err := r1cs.Prove(key, hc)
	require.NoError(t, err)

	_, _, proof, err := Fold(key, p, oldInst, oldWit, nark)
	require.NoError(t, err)

	// acc_old replayed as acc_new: c_new == c_old, so c_new != c_old + r
	require.False(t, Verify(p, oldInst, oldWit, oldInst, oldWit, nark, proof))
}

func TestBitFlipInProofFailsVerify(t *testing.T) {
	p := params.Default()
	hc := &circuits.HashCheck{A: field.Zero(), B: field.One()}
	key, err := r1cs.Index(hc)
	require.NoError(t, err)

	oldInst, oldWit, err := Zero(key.Info.NumVariables())
	require.NoError(t, err)
	nark, err := r1cs.Prove(key, hc)
	require.NoError(t, err)

	newInst, newWit, proof, err := Fold(key, p, oldInst, oldWit, nark)
	require.NoError(t, err)
	require.True(t, Verify(p, oldInst, oldWit, *newInst, *newWit, nark, proof))

	tampered := *proof
	tampered.T = append([]field.Element(nil), proof.T...)
	tampered.T[0] = field.Add(tampered.T[0], field.One())
	require.False(t, Verify(p, oldInst, oldWit, *newInst, *newWit, nark, &tampered))
}
