// Package transcript implements the Fiat-Shamir derivation functions
// (spec.md C4). Per spec.md §4.3, the transcript is not a streaming
// object — it is two pure functions of already-computed commitments, so
// prover and verifier agree without exchanging any interactive state.
package transcript

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2s"

	"github.com/arcfold/arcfold/field"
	"github.com/arcfold/arcfold/params"
)

// DeriveScalar derives the folding scalar r from the input witness's root
// and the old accumulator witness's w-root (spec.md §4.3). It PRFs the two
// 32-byte little-endian blocks through Blake2s and reduces the 32-byte
// output to a field element.
func DeriveScalar(p params.Params, inputWitnessRoot, oldAccWRoot field.Element) field.Element {
	digest := prf(p.ScalarSalt[:], inputWitnessRoot, oldAccWRoot, nil)
	return field.FromLEBytesModOrder(digest)
}

// DeriveIndices derives k spot-check indices in [0, n) from the same two
// roots DeriveScalar consumes, iteratively PRFing a counter-extended block
// and reducing each 64-bit prefix mod n (spec.md §4.3). Canonical
// parameters are k = params.QueryCount, n = params.RATE.
func DeriveIndices(p params.Params, inputWitnessRoot, oldAccWRoot field.Element, k int, n uint64) []uint64 {
	indices := make([]uint64, k)
	for j := 0; j < k; j++ {
		var counter [8]byte
		binary.LittleEndian.PutUint64(counter[:], uint64(j))
		digest := prf(p.IndexSalt[:], inputWitnessRoot, oldAccWRoot, counter[:])
		prefix := binary.LittleEndian.Uint64(digest[:8])
		indices[j] = prefix % n
	}
	return indices
}

// prf keys a Blake2s instance with salt and hashes the little-endian
// encodings of the two roots plus an optional extra block, returning the
// 32-byte digest. salt doubles as Blake2s's keyed-mode key, giving scalar
// and index derivation distinct, domain-separated outputs even though both
// start from the same pair of roots.
func prf(salt []byte, root1, root2 field.Element, extra []byte) []byte {
	h, err := blake2s.New256(salt)
	if err != nil {
		// salt is always <= 32 bytes (params.Params uses [8]byte salts),
		// which blake2s.New256 always accepts as a key.
		panic(err)
	}
	r1 := root1.ToLEBytes()
	r2 := root2.ToLEBytes()
	h.Write(r1[:])
	h.Write(r2[:])
	if extra != nil {
		h.Write(extra)
	}
	return h.Sum(nil)
}
