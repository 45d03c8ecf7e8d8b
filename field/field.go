// Package field abstracts the scalar field F the rest of the accumulation
// core is generic over (spec.md §9: "every component is generic over one
// field type ... expressed via a capability abstraction, not inheritance").
//
// There is exactly one concrete implementation, Element, backed by
// gnark-crypto's BN254 scalar field. Every other package imports this
// package rather than gnark-crypto directly, so the field could be swapped
// by replacing this file alone.
package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Element is a single value in F. The zero value is 0_F.
type Element struct {
	inner fr.Element
}

// ByteLen is the canonical fixed-width encoding length for an Element.
const ByteLen = fr.Bytes

// Field is the capability abstraction spec.md §9 asks for: the minimal set
// of operations the rest of the accumulation core needs from a scalar
// field, captured as an interface rather than a hardwired dependency on
// Element. A caller that only needs this surface can take a Field instead
// of an Element; swapping the underlying field means providing a
// different Field implementation in this package, not touching callers.
// Element is the sole implementation.
type Field interface {
	Add(Element) Element
	Sub(Element) Element
	Mul(Element) Element
	Neg() Element
	IsZero() bool
	IsOne() bool
	Equal(Element) bool
	ToLEBytes() [ByteLen]byte
	String() string
}

var _ Field = Element{}

// Zero returns 0_F.
func Zero() Element { return Element{} }

// One returns 1_F.
func One() Element {
	var e Element
	e.inner.SetOne()
	return e
}

// Generator returns a fixed multiplicative generator of F's largest
// 2-adic subgroup, the same root gnark-crypto's BN254 fr domain machinery
// uses to build FFT/evaluation domains.
func Generator() Element {
	var e Element
	e.inner.SetString("19103219067921713944291392827692070036145651957329286315305642004821462161904")
	return e
}

// FromUint64 lifts a small non-negative integer into F.
func FromUint64(v uint64) Element {
	var e Element
	e.inner.SetUint64(v)
	return e
}

// FromInt64 lifts a small signed integer into F.
func FromInt64(v int64) Element {
	var e Element
	e.inner.SetInt64(v)
	return e
}

// Add returns a+b.
func Add(a, b Element) Element {
	var out Element
	out.inner.Add(&a.inner, &b.inner)
	return out
}

// Sub returns a-b.
func Sub(a, b Element) Element {
	var out Element
	out.inner.Sub(&a.inner, &b.inner)
	return out
}

// Mul returns a*b.
func Mul(a, b Element) Element {
	var out Element
	out.inner.Mul(&a.inner, &b.inner)
	return out
}

// Neg returns -a.
func Neg(a Element) Element {
	var out Element
	out.inner.Neg(&a.inner)
	return out
}

// Exp returns a^n.
func Exp(a Element, n uint64) Element {
	var out Element
	out.inner.Exp(a.inner, new(big.Int).SetUint64(n))
	return out
}

// IsZero reports whether e == 0_F.
func (e Element) IsZero() bool { return e.inner.IsZero() }

// IsOne reports whether e == 1_F.
func (e Element) IsOne() bool { return e.inner.IsOne() }

// Equal reports whether a == b.
func Equal(a, b Element) bool { return a.inner.Equal(&b.inner) }

// Add returns e+other. Method form of Add, satisfying Field.
func (e Element) Add(other Element) Element { return Add(e, other) }

// Sub returns e-other. Method form of Sub, satisfying Field.
func (e Element) Sub(other Element) Element { return Sub(e, other) }

// Mul returns e*other. Method form of Mul, satisfying Field.
func (e Element) Mul(other Element) Element { return Mul(e, other) }

// Neg returns -e. Method form of Neg, satisfying Field.
func (e Element) Neg() Element { return Neg(e) }

// Equal reports whether e == other. Method form of Equal, satisfying Field.
func (e Element) Equal(other Element) bool { return Equal(e, other) }

// ToLEBytes serialises e to a fixed ByteLen little-endian byte array, the
// "to_little_endian_bytes" operation required by spec.md §6.
func (e Element) ToLEBytes() [ByteLen]byte {
	be := e.inner.Bytes() // gnark-crypto returns canonical big-endian bytes
	var le [ByteLen]byte
	for i, b := range be {
		le[ByteLen-1-i] = b
	}
	return le
}

// FromLEBytesModOrder reduces an arbitrary-length little-endian byte slice
// to a field element, interpreting it as a little-endian integer and taking
// it modulo the field order. This is the "from_little_endian_bytes_mod_order"
// operation required by spec.md §6, used to turn raw PRF output into a
// folding scalar and to decode serialized elements.
func FromLEBytesModOrder(le []byte) Element {
	be := make([]byte, len(le))
	for i, b := range le {
		be[len(le)-1-i] = b
	}
	var e Element
	e.inner.SetBytes(be) // SetBytes reduces mod the field order
	return e
}

// FromBytesModOrder reduces an arbitrary-length big-endian byte slice to a
// field element modulo the field order. Used to turn a raw sponge-hash
// digest (itself in gnark-crypto's native big-endian convention) into an F
// element, as opposed to FromLEBytesModOrder which undoes our own
// little-endian wire encoding.
func FromBytesModOrder(be []byte) Element {
	var e Element
	e.inner.SetBytes(be)
	return e
}

// String returns a base-10 debug representation.
func (e Element) String() string { return e.inner.String() }
