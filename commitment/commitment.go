// Package commitment holds the single codeword-commitment primitive every
// root compared across this library is built from: Reed-Solomon encode at
// RATE, then Merkle-commit the resulting codeword.
//
// spec.md §3 and §4.6/§4.7 define AccumulatorWitness's roots, and the
// folding verifier's z-openings check directly against the NARK's
// AssignmentCommitment, as codeword-tree roots throughout; taking §4.8's
// one-off "not Reed-Solomon-encoded" aside at face value would introduce a
// third, incompatible commitment shape that the zero-accumulator and
// honest-fold testable properties in spec.md §8 could never satisfy. This
// package exists so r1cs and accumulator share one definition instead of
// drifting apart, since neither package can import the other.
package commitment

import (
	"github.com/arcfold/arcfold/field"
	"github.com/arcfold/arcfold/merkle"
	"github.com/arcfold/arcfold/params"
	"github.com/arcfold/arcfold/rs"
)

// Codeword Reed-Solomon encodes v at RATE and Merkle-commits the result,
// returning the root together with the tree and codeword so a caller that
// needs to open indices later doesn't have to recompute either.
func Codeword(v []field.Element) (field.Element, *merkle.Tree, rs.Codeword, error) {
	code, err := rs.Encode(v, params.RATE)
	if err != nil {
		return field.Element{}, nil, rs.Codeword{}, err
	}
	tree, err := merkle.Build(code.Values)
	if err != nil {
		return field.Element{}, nil, rs.Codeword{}, err
	}
	return tree.Root(), tree, code, nil
}

// Root is the one-shot form of Codeword that only needs the root.
func Root(v []field.Element) (field.Element, error) {
	root, _, _, err := Codeword(v)
	return root, err
}
