package r1cs

import (
	"fmt"

	"github.com/arcfold/arcfold/commitment"
	"github.com/arcfold/arcfold/field"
)

// FullAssignment is the full z vector kept as the two ordered sequences
// that make it up: the public input and the private witness (spec.md §3).
type FullAssignment struct {
	Input   []field.Element
	Witness []field.Element
}

// Concat returns input ‖ witness, the virtual vector matrix column
// indices address.
func (z FullAssignment) Concat() []field.Element { return Concat(z.Input, z.Witness) }

// AssignmentCommitment is the root of the codeword commitment to a full
// assignment (spec.md §3): Reed-Solomon encode z at RATE, then Merkle-root
// the codeword. See the commitment package's doc comment for why this is
// the same commitment shape every other root in this library uses, rather
// than a separate raw singleton-leaf tree.
type AssignmentCommitment = field.Element

// CommitAssignment computes the codeword-commitment root over z, per
// spec.md §3's AssignmentCommitment definition as resolved in the
// commitment package.
func CommitAssignment(z []field.Element) (AssignmentCommitment, error) {
	return commitment.Root(z)
}

// NarkProof is the NARK's output: the full assignment plus a commitment
// to it. Spec.md names the commitment field "witness"; this package calls
// it Commitment to avoid colliding with FullAssignment.Witness, the
// private witness vector it commits to.
type NarkProof struct {
	Instance   FullAssignment
	Commitment AssignmentCommitment
}

// Prove runs the front end in prove mode, checks its output against the
// prover key's declared shape, commits to the full assignment, and
// returns the resulting proof (spec.md §4.4).
func Prove(pk *ProverKey, fe FrontEnd) (*NarkProof, error) {
	input, witness, numConstraints, err := fe.Prove()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontEndFailure, err)
	}

	if len(input) != pk.Info.NumInstance ||
		len(witness) != pk.Info.NumWitness ||
		numConstraints != pk.Info.NumConstraints {
		return nil, fmt.Errorf("%w: front end produced (input=%d,witness=%d,constraints=%d), key declares (%d,%d,%d)",
			ErrPreconditionMismatch, len(input), len(witness), numConstraints,
			pk.Info.NumInstance, pk.Info.NumWitness, pk.Info.NumConstraints)
	}

	z := Concat(input, witness)
	com, err := CommitAssignment(z)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPreconditionMismatch, err)
	}

	return &NarkProof{
		Instance:   FullAssignment{Input: input, Witness: witness},
		Commitment: com,
	}, nil
}

// Verify checks the cubic R1CS relation (A·z) ⊙ (B·z) = C·z for
// z = publicInput ‖ proof.Instance.Witness (spec.md §4.4). It never
// aborts: every failure — including a length mismatch that would panic a
// naive MatVec — collapses to a false return, per spec.md §7's policy for
// verify/decide.
func Verify(vk *VerifierKey, publicInput []field.Element, proof *NarkProof) bool {
	if len(publicInput)+len(proof.Instance.Witness) != vk.Info.NumVariables() {
		return false
	}

	z := Concat(publicInput, proof.Instance.Witness)

	a := MatVec(vk.A, z)
	b := MatVec(vk.B, z)
	c := MatVec(vk.C, z)

	ab := VecHadamard(a, b)
	for i := range ab {
		if !field.Equal(ab[i], c[i]) {
			return false
		}
	}
	return true
}
