package merkle

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/poseidon2"

	"github.com/arcfold/arcfold/field"
)

// hashElements feeds the little-endian encoding of each element through a
// fresh field-native sponge and reduces the digest back into F. The same
// construction serves both the leaf-hash (a single element) and the
// two-to-one inner hash (two elements), matching spec.md §4.2's "both the
// leaf-hash and the inner two-to-one hash are the same field-native
// sponge." Grounded on the poseidon2.NewMerkleDamgardHasher() usage in
// other_examples/…MuriData-muri-zkproof__pkg-merkle-merkle_test.go.go.
func hashElements(elems ...field.Element) field.Element {
	h := poseidon2.NewMerkleDamgardHasher()
	for _, e := range elems {
		b := e.ToLEBytes()
		_, _ = h.Write(b[:])
	}
	digest := h.Sum(nil)
	return field.FromBytesModOrder(digest)
}

// Hash exposes the tree's field-native sponge to callers outside this
// package that need the same hash function (e.g. a front end's Prove
// computing a preimage's hash under this exact construction).
func Hash(elems ...field.Element) field.Element { return hashElements(elems...) }
