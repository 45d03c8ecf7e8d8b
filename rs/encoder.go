// Package rs implements the Reed-Solomon encoder (spec.md C2): evaluating a
// coefficient polynomial on a fixed, generator-derived domain so the
// folding verifier can later spot-check low-degree proximity.
//
// The domain construction below is adapted from the teacher's
// internal/kzg/domain.go, which itself notes it was "copied and modified
// from fft.NewDomain": both lay out the powers of a 2-adic subgroup
// generator. This one always uses field.Generator(), the generator of the
// field's largest 2-adic subgroup, whatever t is. Unlike the teacher's Domain, this
// one is evaluation-only (no inverse-FFT machinery) because the spec only
// ever evaluates a polynomial on the domain, never interpolates back.
package rs

import (
	"github.com/arcfold/arcfold/field"
	"github.com/arcfold/arcfold/params"
)

// Codeword is a polynomial's evaluations on the fixed domain
// (g, g^2, ..., g^t).
type Codeword struct {
	// Coeffs is the retained coefficient vector P was built from.
	Coeffs []field.Element
	// Domain holds (g, g^2, ..., g^t).
	Domain []field.Element
	// Values holds code[i] = P(Domain[i]).
	Values []field.Element
}

// Encode evaluates the polynomial P(X) = sum(coeffs[i] * X^i) on the first t
// powers of the field generator. t must be a power of two (every caller in
// this library passes params.RATE) and must be at least len(coeffs); Encode
// does not check either. Encode fails with ErrEncodeDegreeExceeded if
// len(coeffs) > RATE.
func Encode(coeffs []field.Element, t uint64) (Codeword, error) {
	if uint64(len(coeffs)) > params.RATE {
		return Codeword{}, ErrEncodeDegreeExceeded
	}

	domain := EvaluationDomain(t)

	values := make([]field.Element, t)
	for i, x := range domain {
		values[i] = evalAt(coeffs, x)
	}

	retained := make([]field.Element, len(coeffs))
	copy(retained, coeffs)

	return Codeword{Coeffs: retained, Domain: domain, Values: values}, nil
}

// EvaluationDomain returns (g, g^2, ..., g^t), the fixed rate-determining
// domain spec.md §4.1 requires.
func EvaluationDomain(t uint64) []field.Element {
	g := field.Generator()
	domain := make([]field.Element, t)
	cur := g
	for i := uint64(0); i < t; i++ {
		domain[i] = cur
		cur = field.Mul(cur, g)
	}
	return domain
}

// evalAt evaluates P at x via Horner's method.
func evalAt(coeffs []field.Element, x field.Element) field.Element {
	acc := field.Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = field.Add(field.Mul(acc, x), coeffs[i])
	}
	return acc
}

// NextPowerOfTwo returns the smallest power of two >= n (n > 0).
func NextPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

// PadToPowerOfTwo right-pads v with 0_F up to the next power of two length,
// the padding rule spec.md §9 calls out as "part of the committed object."
func PadToPowerOfTwo(v []field.Element) []field.Element {
	target := NextPowerOfTwo(uint64(len(v)))
	if uint64(len(v)) == target {
		out := make([]field.Element, len(v))
		copy(out, v)
		return out
	}
	out := make([]field.Element, target)
	copy(out, v)
	for i := len(v); i < int(target); i++ {
		out[i] = field.Zero()
	}
	return out
}
