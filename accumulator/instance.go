// Package accumulator implements the accumulator data model and the
// folding prover/verifier/decider (spec.md C6-C9): the running aggregate
// that absorbs one fresh R1CS-satisfying assignment per fold while
// remembering the cross-term residue in err, closed out by a one-shot
// decider check.
package accumulator

import "github.com/arcfold/arcfold/field"

// Instance is the public half of an accumulator: w, err, and the scalar
// c (spec.md §3 AccumulatorInstance).
type Instance struct {
	W   []field.Element
	Err []field.Element
	C   field.Element
}

// Witness is the private half of an accumulator: Merkle roots over the
// codeword commitments to w and err (spec.md §3 AccumulatorWitness).
type Witness struct {
	BlindedW   field.Element
	BlindedErr field.Element
}

// Zero builds the zero accumulator for a circuit with n = num_variables.
// w = err = [0_F]^n, c = 0_F, and both witness roots are the commitment to
// an all-zero RATE-length codeword (spec.md §3). The zero accumulator
// satisfies the decider unconditionally (spec.md §8).
func Zero(n int) (Instance, Witness, error) {
	w := make([]field.Element, n)
	errv := make([]field.Element, n)
	for i := range w {
		w[i] = field.Zero()
		errv[i] = field.Zero()
	}

	root, _, _, err := codewordCommit(w)
	if err != nil {
		return Instance{}, Witness{}, err
	}

	return Instance{W: w, Err: errv, C: field.Zero()},
		Witness{BlindedW: root, BlindedErr: root},
		nil
}
