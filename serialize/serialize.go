// Package serialize implements the canonical byte encodings spec.md §6
// requires: little-endian field limbs, length-prefixed vectors, and the
// folding proof's openings as (leaf_index: u64, leaf_value: F,
// sibling_hashes: []F).
package serialize

import (
	"encoding/binary"

	"github.com/arcfold/arcfold/accumulator"
	"github.com/arcfold/arcfold/field"
	"github.com/arcfold/arcfold/merkle"
	"github.com/arcfold/arcfold/r1cs"
)

// cursor reads sequentially from a byte slice, returning ErrTruncated
// instead of panicking once the underlying slice runs out.
type cursor struct {
	b []byte
}

func (c *cursor) u64() (uint64, error) {
	if len(c.b) < 8 {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint64(c.b[:8])
	c.b = c.b[8:]
	return v, nil
}

func (c *cursor) int_() (int, error) {
	v, err := c.u64()
	return int(v), err
}

func (c *cursor) element() (field.Element, error) {
	if len(c.b) < field.ByteLen {
		return field.Element{}, ErrTruncated
	}
	var le [field.ByteLen]byte
	copy(le[:], c.b[:field.ByteLen])
	c.b = c.b[field.ByteLen:]
	return field.FromLEBytesModOrder(le[:]), nil
}

func putU64(out []byte, v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return append(out, b[:]...)
}

func putElement(out []byte, e field.Element) []byte {
	le := e.ToLEBytes()
	return append(out, le[:]...)
}

// MarshalVector encodes a length-prefixed sequence of field elements.
func MarshalVector(v []field.Element) []byte {
	out := putU64(nil, uint64(len(v)))
	for _, e := range v {
		out = putElement(out, e)
	}
	return out
}

// UnmarshalVector decodes a length-prefixed sequence of field elements,
// returning the remaining bytes.
func UnmarshalVector(b []byte) ([]field.Element, []byte, error) {
	c := cursor{b: b}
	n, err := c.int_()
	if err != nil {
		return nil, nil, err
	}
	v := make([]field.Element, n)
	for i := range v {
		v[i], err = c.element()
		if err != nil {
			return nil, nil, err
		}
	}
	return v, c.b, nil
}

// MarshalMatrix encodes a sparse r1cs.Matrix: a length-prefixed sequence
// of rows, each a length-prefixed sequence of (coeff, col) pairs.
func MarshalMatrix(m r1cs.Matrix) []byte {
	out := putU64(nil, uint64(len(m)))
	for _, row := range m {
		out = putU64(out, uint64(len(row)))
		for _, e := range row {
			out = putElement(out, e.Coeff)
			out = putU64(out, uint64(e.Col))
		}
	}
	return out
}

// UnmarshalMatrix decodes a sparse r1cs.Matrix, returning the remaining
// bytes.
func UnmarshalMatrix(b []byte) (r1cs.Matrix, []byte, error) {
	c := cursor{b: b}
	numRows, err := c.int_()
	if err != nil {
		return nil, nil, err
	}
	m := make(r1cs.Matrix, numRows)
	for i := range m {
		numEntries, err := c.int_()
		if err != nil {
			return nil, nil, err
		}
		row := make(r1cs.Row, numEntries)
		for j := range row {
			coeff, err := c.element()
			if err != nil {
				return nil, nil, err
			}
			col, err := c.int_()
			if err != nil {
				return nil, nil, err
			}
			row[j] = r1cs.Entry{Coeff: coeff, Col: col}
		}
		m[i] = row
	}
	return m, c.b, nil
}

// MarshalIndexInfo encodes an r1cs.IndexInfo as three length fields.
func MarshalIndexInfo(ii r1cs.IndexInfo) []byte {
	out := putU64(nil, uint64(ii.NumConstraints))
	out = putU64(out, uint64(ii.NumInstance))
	out = putU64(out, uint64(ii.NumWitness))
	return out
}

// UnmarshalIndexInfo decodes an r1cs.IndexInfo, returning the remaining
// bytes.
func UnmarshalIndexInfo(b []byte) (r1cs.IndexInfo, []byte, error) {
	c := cursor{b: b}
	numConstraints, err := c.int_()
	if err != nil {
		return r1cs.IndexInfo{}, nil, err
	}
	numInstance, err := c.int_()
	if err != nil {
		return r1cs.IndexInfo{}, nil, err
	}
	numWitness, err := c.int_()
	if err != nil {
		return r1cs.IndexInfo{}, nil, err
	}
	return r1cs.IndexInfo{
		NumConstraints: numConstraints,
		NumInstance:    numInstance,
		NumWitness:     numWitness,
	}, c.b, nil
}

// MarshalKey encodes a ProverKey/VerifierKey/DeciderKey (they share one
// representation, per spec.md §3).
func MarshalKey(k *r1cs.Key) []byte {
	out := MarshalIndexInfo(k.Info)
	out = append(out, MarshalMatrix(k.A)...)
	out = append(out, MarshalMatrix(k.B)...)
	out = append(out, MarshalMatrix(k.C)...)
	return out
}

// UnmarshalKey decodes an r1cs.Key, returning the remaining bytes.
func UnmarshalKey(b []byte) (*r1cs.Key, []byte, error) {
	info, rest, err := UnmarshalIndexInfo(b)
	if err != nil {
		return nil, nil, err
	}
	a, rest, err := UnmarshalMatrix(rest)
	if err != nil {
		return nil, nil, err
	}
	bm, rest, err := UnmarshalMatrix(rest)
	if err != nil {
		return nil, nil, err
	}
	cm, rest, err := UnmarshalMatrix(rest)
	if err != nil {
		return nil, nil, err
	}
	return &r1cs.Key{Info: info, A: a, B: bm, C: cm}, rest, nil
}

// MarshalNarkProof encodes an r1cs.NarkProof.
func MarshalNarkProof(p *r1cs.NarkProof) []byte {
	out := MarshalVector(p.Instance.Input)
	out = append(out, MarshalVector(p.Instance.Witness)...)
	out = putElement(out, p.Commitment)
	return out
}

// UnmarshalNarkProof decodes an r1cs.NarkProof, returning the remaining
// bytes.
func UnmarshalNarkProof(b []byte) (*r1cs.NarkProof, []byte, error) {
	input, rest, err := UnmarshalVector(b)
	if err != nil {
		return nil, nil, err
	}
	witness, rest, err := UnmarshalVector(rest)
	if err != nil {
		return nil, nil, err
	}
	c := cursor{b: rest}
	commitment, err := c.element()
	if err != nil {
		return nil, nil, err
	}
	return &r1cs.NarkProof{
		Instance:   r1cs.FullAssignment{Input: input, Witness: witness},
		Commitment: commitment,
	}, c.b, nil
}

// MarshalInstance encodes an accumulator.Instance.
func MarshalInstance(inst *accumulator.Instance) []byte {
	out := MarshalVector(inst.W)
	out = append(out, MarshalVector(inst.Err)...)
	out = putElement(out, inst.C)
	return out
}

// UnmarshalInstance decodes an accumulator.Instance, returning the
// remaining bytes.
func UnmarshalInstance(b []byte) (*accumulator.Instance, []byte, error) {
	w, rest, err := UnmarshalVector(b)
	if err != nil {
		return nil, nil, err
	}
	errv, rest, err := UnmarshalVector(rest)
	if err != nil {
		return nil, nil, err
	}
	c := cursor{b: rest}
	cScalar, err := c.element()
	if err != nil {
		return nil, nil, err
	}
	return &accumulator.Instance{W: w, Err: errv, C: cScalar}, c.b, nil
}

// MarshalWitness encodes an accumulator.Witness.
func MarshalWitness(wit *accumulator.Witness) []byte {
	out := putElement(nil, wit.BlindedW)
	out = putElement(out, wit.BlindedErr)
	return out
}

// UnmarshalWitness decodes an accumulator.Witness, returning the
// remaining bytes.
func UnmarshalWitness(b []byte) (*accumulator.Witness, []byte, error) {
	c := cursor{b: b}
	blindedW, err := c.element()
	if err != nil {
		return nil, nil, err
	}
	blindedErr, err := c.element()
	if err != nil {
		return nil, nil, err
	}
	return &accumulator.Witness{BlindedW: blindedW, BlindedErr: blindedErr}, c.b, nil
}

// MarshalOpening encodes a merkle.Opening as (leaf_index: u64, leaf_value:
// F, sibling_hashes: []F), per spec.md §6.
func MarshalOpening(o merkle.Opening) []byte {
	out := putU64(nil, o.LeafIndex)
	out = putElement(out, o.LeafValue)
	out = append(out, MarshalVector(o.Path)...)
	return out
}

// UnmarshalOpening decodes a merkle.Opening, returning the remaining
// bytes.
func UnmarshalOpening(b []byte) (merkle.Opening, []byte, error) {
	c := cursor{b: b}
	idx, err := c.u64()
	if err != nil {
		return merkle.Opening{}, nil, err
	}
	leaf, err := c.element()
	if err != nil {
		return merkle.Opening{}, nil, err
	}
	path, rest, err := UnmarshalVector(c.b)
	if err != nil {
		return merkle.Opening{}, nil, err
	}
	return merkle.Opening{LeafIndex: idx, LeafValue: leaf, Path: path}, rest, nil
}

func marshalOpenings(os []merkle.Opening) []byte {
	out := putU64(nil, uint64(len(os)))
	for _, o := range os {
		out = append(out, MarshalOpening(o)...)
	}
	return out
}

func unmarshalOpenings(b []byte) ([]merkle.Opening, []byte, error) {
	c := cursor{b: b}
	n, err := c.int_()
	if err != nil {
		return nil, nil, err
	}
	out := make([]merkle.Opening, n)
	rest := c.b
	for i := range out {
		out[i], rest, err = UnmarshalOpening(rest)
		if err != nil {
			return nil, nil, err
		}
	}
	return out, rest, nil
}

// MarshalFoldingProof encodes an accumulator.FoldingProof.
func MarshalFoldingProof(p *accumulator.FoldingProof) []byte {
	out := MarshalVector(p.T)
	out = putElement(out, p.BlindedT)
	out = append(out, marshalOpenings(p.Openings.WOld)...)
	out = append(out, marshalOpenings(p.Openings.WNew)...)
	out = append(out, marshalOpenings(p.Openings.Z)...)
	out = append(out, marshalOpenings(p.Openings.ErrOld)...)
	out = append(out, marshalOpenings(p.Openings.ErrNew)...)
	out = append(out, marshalOpenings(p.Openings.T)...)
	return out
}

// UnmarshalFoldingProof decodes an accumulator.FoldingProof, returning the
// remaining bytes.
func UnmarshalFoldingProof(b []byte) (*accumulator.FoldingProof, []byte, error) {
	t, rest, err := UnmarshalVector(b)
	if err != nil {
		return nil, nil, err
	}
	c := cursor{b: rest}
	blindedT, err := c.element()
	if err != nil {
		return nil, nil, err
	}

	wOld, rest, err := unmarshalOpenings(c.b)
	if err != nil {
		return nil, nil, err
	}
	wNew, rest, err := unmarshalOpenings(rest)
	if err != nil {
		return nil, nil, err
	}
	z, rest, err := unmarshalOpenings(rest)
	if err != nil {
		return nil, nil, err
	}
	errOld, rest, err := unmarshalOpenings(rest)
	if err != nil {
		return nil, nil, err
	}
	errNew, rest, err := unmarshalOpenings(rest)
	if err != nil {
		return nil, nil, err
	}
	tOpenings, rest, err := unmarshalOpenings(rest)
	if err != nil {
		return nil, nil, err
	}

	return &accumulator.FoldingProof{
		T:        t,
		BlindedT: blindedT,
		Openings: accumulator.Openings{
			WOld:   wOld,
			WNew:   wNew,
			Z:      z,
			ErrOld: errOld,
			ErrNew: errNew,
			T:      tOpenings,
		},
	}, rest, nil
}
