package r1cs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcfold/arcfold/field"
)

// multiplyFrontEnd proves knowledge of a, b such that a*b = c, with
// z = [one, c, a, b].
type multiplyFrontEnd struct {
	a, b field.Element
}

func (m *multiplyFrontEnd) Setup() (a, b, c Matrix, numInstance, numWitness, numConstraints int, err error) {
	a = Matrix{{{Coeff: field.One(), Col: 2}}}
	b = Matrix{{{Coeff: field.One(), Col: 3}}}
	c = Matrix{{{Coeff: field.One(), Col: 1}}}
	return a, b, c, 2, 2, 1, nil
}

func (m *multiplyFrontEnd) Prove() (input, witness []field.Element, numConstraints int, err error) {
	product := field.Mul(m.a, m.b)
	return []field.Element{field.One(), product}, []field.Element{m.a, m.b}, 1, nil
}

func TestIndexProveVerifyHonest(t *testing.T) {
	fe := &multiplyFrontEnd{a: field.FromUint64(6), b: field.FromUint64(7)}
	pk, err := Index(fe)
	require.NoError(t, err)
	require.Equal(t, 4, pk.Info.NumVariables())

	proof, err := Prove(pk, fe)
	require.NoError(t, err)

	require.True(t, Verify(pk, proof.Instance.Input, proof))
}

func TestVerifyRejectsWrongPublicInput(t *testing.T) {
	fe := &multiplyFrontEnd{a: field.FromUint64(6), b: field.FromUint64(7)}
	pk, err := Index(fe)
	require.NoError(t, err)

	proof, err := Prove(pk, fe)
	require.NoError(t, err)

	wrongInput := []field.Element{field.One(), field.FromUint64(999)}
	require.False(t, Verify(pk, wrongInput, proof))
}

func TestProveRejectsShapeMismatch(t *testing.T) {
	fe := &multiplyFrontEnd{a: field.FromUint64(6), b: field.FromUint64(7)}
	pk, err := Index(fe)
	require.NoError(t, err)
	pk.Info.NumWitness = 99 // corrupt the declared shape

	_, err = Prove(pk, fe)
	require.ErrorIs(t, err, ErrPreconditionMismatch)
}

func TestCommitAssignmentDeterministic(t *testing.T) {
	z := []field.Element{field.FromUint64(1), field.FromUint64(2), field.FromUint64(3)}
	a, err := CommitAssignment(z)
	require.NoError(t, err)
	b, err := CommitAssignment(z)
	require.NoError(t, err)
	require.True(t, field.Equal(a, b))
}

func TestMatVecSkipsUnitCoefficient(t *testing.T) {
	m := Matrix{
		{{Coeff: field.One(), Col: 0}, {Coeff: field.FromUint64(2), Col: 1}},
	}
	z := []field.Element{field.FromUint64(3), field.FromUint64(5)}
	out := MatVec(m, z)
	require.Len(t, out, 1)
	require.True(t, field.Equal(out[0], field.FromUint64(13))) // 3 + 2*5
}
