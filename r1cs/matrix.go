// Package r1cs implements the R1CS data model and NARK (spec.md C5):
// indexing a circuit into sparse matrices (A,B,C), committing to a full
// assignment, and verifying the cubic relation (A·z) ⊙ (B·z) = C·z.
package r1cs

import "github.com/arcfold/arcfold/field"

// Entry is one non-zero (coefficient, column) pair in a sparse matrix row.
// Column indices address the concatenation [input ‖ witness].
type Entry struct {
	Coeff field.Element
	Col   int
}

// Row is a sparse constraint row: an ordered sequence of non-zero entries.
type Row []Entry

// Matrix is a sparse, row-major matrix: one Row per constraint.
type Matrix []Row

// MatVec computes the inner product of every row against z, i.e. Matrix·z.
// The result has one entry per row (= one entry per constraint). A
// coefficient equal to 1_F skips the multiply, per spec.md §4.5's stated
// optimization (semantically identical, since field.Mul(1_F, x) == x).
func MatVec(m Matrix, z []field.Element) []field.Element {
	out := make([]field.Element, len(m))
	for i, row := range m {
		acc := field.Zero()
		for _, e := range row {
			var term field.Element
			if e.Coeff.IsOne() {
				term = z[e.Col]
			} else {
				term = field.Mul(e.Coeff, z[e.Col])
			}
			acc = field.Add(acc, term)
		}
		out[i] = acc
	}
	return out
}
