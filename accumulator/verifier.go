package accumulator

import (
	"github.com/arcfold/arcfold/field"
	"github.com/arcfold/arcfold/merkle"
	"github.com/arcfold/arcfold/params"
	"github.com/arcfold/arcfold/r1cs"
	"github.com/arcfold/arcfold/rs"
	"github.com/arcfold/arcfold/transcript"
)

// Verify is the folding verifier (spec.md §4.7, C8). It never aborts:
// every failure collapses to a false return, per spec.md §7's policy.
func Verify(p params.Params, oldInst Instance, oldWit Witness, newInst Instance, newWit Witness, input *r1cs.NarkProof, proof *FoldingProof) bool {
	k := params.QueryCount
	if len(proof.Openings.WOld) != k || len(proof.Openings.WNew) != k ||
		len(proof.Openings.Z) != k || len(proof.Openings.ErrOld) != k ||
		len(proof.Openings.ErrNew) != k || len(proof.Openings.T) != k {
		return false
	}

	z := input.Instance.Concat()
	if len(z) == 0 || len(oldInst.W) != len(z) || len(oldInst.Err) != len(z) ||
		len(newInst.W) != len(z) || len(newInst.Err) != len(z) || len(proof.T) != len(z) {
		return false
	}

	wOldCode, err := rs.Encode(oldInst.W, params.RATE)
	if err != nil {
		return false
	}
	errOldCode, err := rs.Encode(oldInst.Err, params.RATE)
	if err != nil {
		return false
	}
	zCode, err := rs.Encode(z, params.RATE)
	if err != nil {
		return false
	}
	tCode, err := rs.Encode(proof.T, params.RATE)
	if err != nil {
		return false
	}
	wNewCode, err := rs.Encode(newInst.W, params.RATE)
	if err != nil {
		return false
	}
	errNewCode, err := rs.Encode(newInst.Err, params.RATE)
	if err != nil {
		return false
	}

	r := transcript.DeriveScalar(p, input.Commitment, oldWit.BlindedW)

	if !field.Equal(newInst.C, field.Add(oldInst.C, r)) {
		return false
	}

	idx := transcript.DeriveIndices(p, input.Commitment, oldWit.BlindedW, k, params.RATE)

	for j, i := range idx {
		if !checkOpening(oldWit.BlindedW, proof.Openings.WOld[j], i, wOldCode.Values[i]) {
			return false
		}
		if !checkOpening(newWit.BlindedW, proof.Openings.WNew[j], i, wNewCode.Values[i]) {
			return false
		}
		if !checkOpening(input.Commitment, proof.Openings.Z[j], i, zCode.Values[i]) {
			return false
		}
		if !checkOpening(oldWit.BlindedErr, proof.Openings.ErrOld[j], i, errOldCode.Values[i]) {
			return false
		}
		if !checkOpening(newWit.BlindedErr, proof.Openings.ErrNew[j], i, errNewCode.Values[i]) {
			return false
		}
		if !checkOpening(proof.BlindedT, proof.Openings.T[j], i, tCode.Values[i]) {
			return false
		}

		// w_new_code[i] == w_old_code[i] + r · z_code[i]
		expectedW := field.Add(wOldCode.Values[i], field.Mul(r, zCode.Values[i]))
		if !field.Equal(wNewCode.Values[i], expectedW) {
			return false
		}

		// err_new_code[i] == err_old_code[i] + r · t_code[i]
		expectedErr := field.Add(errOldCode.Values[i], field.Mul(r, tCode.Values[i]))
		if !field.Equal(errNewCode.Values[i], expectedErr) {
			return false
		}
	}

	return true
}

// checkOpening verifies opening against root, checks that the opening's
// own leaf index is the Fiat-Shamir-derived spot-check index i (otherwise
// a genuine opening for some other leaf in the same tree whose value
// happens to match localValue would pass), and checks that the opened
// leaf equals the locally recomputed codeword value, per spec.md §4.7
// step 6.
func checkOpening(root field.Element, opening merkle.Opening, i uint64, localValue field.Element) bool {
	if opening.LeafIndex != i {
		return false
	}
	if !field.Equal(opening.LeafValue, localValue) {
		return false
	}
	return merkle.Verify(root, opening)
}
