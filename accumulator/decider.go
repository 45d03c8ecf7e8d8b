package accumulator

import (
	"github.com/arcfold/arcfold/field"
	"github.com/arcfold/arcfold/r1cs"
)

// Decide is the one-shot decider (spec.md §4.8, C9): the final check that
// closes out a chain of folds, confirming the accumulator's w/err/c jointly
// satisfy the relaxed R1CS relation A·w ⊙ B·w == err + c·(C·w).
//
// It first recomputes the codeword commitments to inst.W and inst.Err and
// rejects unless they match wit.BlindedW/BlindedErr: the decider trusts
// nothing the prover hands it beyond the accumulator pair itself. See
// commit.go for why this uses the same codewordCommit as every other root
// in this package, rather than the distilled spec's one-off uncoded
// variant for this step.
func Decide(dk *r1cs.Key, inst Instance, wit Witness) bool {
	n := dk.Info.NumVariables()
	if len(inst.W) != n || len(inst.Err) != n {
		return false
	}

	wRoot, _, _, err := codewordCommit(inst.W)
	if err != nil {
		return false
	}
	if !field.Equal(wRoot, wit.BlindedW) {
		return false
	}

	errRoot, _, _, err := codewordCommit(inst.Err)
	if err != nil {
		return false
	}
	if !field.Equal(errRoot, wit.BlindedErr) {
		return false
	}

	aw, err := r1cs.PadTo(r1cs.MatVec(dk.A, inst.W), n)
	if err != nil {
		return false
	}
	bw, err := r1cs.PadTo(r1cs.MatVec(dk.B, inst.W), n)
	if err != nil {
		return false
	}
	cw, err := r1cs.PadTo(r1cs.MatVec(dk.C, inst.W), n)
	if err != nil {
		return false
	}

	lhs := r1cs.VecHadamard(aw, bw)
	rhs := r1cs.VecAdd(inst.Err, r1cs.VecScale(inst.C, cw))

	if len(lhs) != len(rhs) {
		return false
	}
	for i := range lhs {
		if !field.Equal(lhs[i], rhs[i]) {
			return false
		}
	}
	return true
}
