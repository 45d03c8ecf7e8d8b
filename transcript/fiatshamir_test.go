package transcript

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcfold/arcfold/field"
	"github.com/arcfold/arcfold/params"
)

func TestDeriveScalarDeterministic(t *testing.T) {
	p := params.Default()
	r1 := field.FromUint64(11)
	r2 := field.FromUint64(22)

	a := DeriveScalar(p, r1, r2)
	b := DeriveScalar(p, r1, r2)
	require.True(t, field.Equal(a, b))
}

func TestDeriveScalarSensitiveToInputs(t *testing.T) {
	p := params.Default()
	a := DeriveScalar(p, field.FromUint64(1), field.FromUint64(2))
	b := DeriveScalar(p, field.FromUint64(1), field.FromUint64(3))
	require.False(t, field.Equal(a, b))
}

func TestDeriveIndicesDeterministicAndInRange(t *testing.T) {
	p := params.Default()
	r1 := field.FromUint64(5)
	r2 := field.FromUint64(9)

	idx1 := DeriveIndices(p, r1, r2, params.QueryCount, params.RATE)
	idx2 := DeriveIndices(p, r1, r2, params.QueryCount, params.RATE)
	require.Equal(t, idx1, idx2)
	require.Len(t, idx1, params.QueryCount)
	for _, i := range idx1 {
		require.Less(t, i, uint64(params.RATE))
	}
}

func TestDeriveIndicesDomainSeparatedFromScalar(t *testing.T) {
	p := params.Default()
	r1 := field.FromUint64(5)
	r2 := field.FromUint64(9)

	scalar := DeriveScalar(p, r1, r2)
	idx := DeriveIndices(p, r1, r2, params.QueryCount, params.RATE)
	// the scalar derivation and index derivation must not collapse to the
	// same seed stream just because they share (r1, r2)
	require.False(t, field.Equal(scalar, field.FromUint64(idx[0])))
}
