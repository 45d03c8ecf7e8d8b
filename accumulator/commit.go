package accumulator

import (
	"github.com/arcfold/arcfold/commitment"
	"github.com/arcfold/arcfold/field"
	"github.com/arcfold/arcfold/merkle"
	"github.com/arcfold/arcfold/rs"
)

// codewordCommit is a thin local alias for commitment.Codeword: every root
// this package compares — the accumulator witness roots, the folding
// proof's BlindedT, and the decider's self-consistency recomputation — is
// the same RS-codeword-then-Merkle commitment the NARK commitment also
// uses (commitment.Codeword's doc comment explains why).
func codewordCommit(v []field.Element) (field.Element, *merkle.Tree, rs.Codeword, error) {
	return commitment.Codeword(v)
}
