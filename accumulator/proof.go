package accumulator

import (
	"github.com/arcfold/arcfold/field"
	"github.com/arcfold/arcfold/merkle"
)

// Openings bundles one authentication path per queried index for each of
// the six codeword trees a fold touches (spec.md §3 FoldingProof).
type Openings struct {
	WOld   []merkle.Opening
	WNew   []merkle.Opening
	Z      []merkle.Opening
	ErrOld []merkle.Opening
	ErrNew []merkle.Opening
	T      []merkle.Opening
}

// FoldingProof is the folding prover's output (spec.md §3).
type FoldingProof struct {
	T        []field.Element
	BlindedT field.Element
	Openings Openings
}
