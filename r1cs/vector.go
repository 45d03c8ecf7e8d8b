package r1cs

import (
	"fmt"

	"github.com/arcfold/arcfold/field"
)

// PadTo right-pads v with 0_F to exactly length n. It is a no-op if v is
// already that length, and returns ErrPreconditionMismatch if v is already
// longer than n (a circuit with num_constraints > num_variables, or a
// front end producing more entries than IndexInfo declared, is a
// precondition violation callers must reject rather than abort on, per
// spec.md §7's "verify and decide never abort" policy).
func PadTo(v []field.Element, n int) ([]field.Element, error) {
	if len(v) == n {
		return v, nil
	}
	if len(v) > n {
		return nil, fmt.Errorf("%w: vector of length %d longer than target padding length %d",
			ErrPreconditionMismatch, len(v), n)
	}
	out := make([]field.Element, n)
	copy(out, v)
	for i := len(v); i < n; i++ {
		out[i] = field.Zero()
	}
	return out, nil
}

// VecAdd returns a+b elementwise. a and b must have equal length.
func VecAdd(a, b []field.Element) []field.Element {
	out := make([]field.Element, len(a))
	for i := range a {
		out[i] = field.Add(a[i], b[i])
	}
	return out
}

// VecSub returns a-b elementwise. a and b must have equal length.
func VecSub(a, b []field.Element) []field.Element {
	out := make([]field.Element, len(a))
	for i := range a {
		out[i] = field.Sub(a[i], b[i])
	}
	return out
}

// VecHadamard returns a⊙b, the elementwise product. a and b must have
// equal length.
func VecHadamard(a, b []field.Element) []field.Element {
	out := make([]field.Element, len(a))
	for i := range a {
		out[i] = field.Mul(a[i], b[i])
	}
	return out
}

// VecScale returns r·v elementwise.
func VecScale(r field.Element, v []field.Element) []field.Element {
	out := make([]field.Element, len(v))
	for i := range v {
		out[i] = field.Mul(r, v[i])
	}
	return out
}

// Concat returns input ‖ witness as a single vector, the virtual
// assignment z every matrix's column indices address (spec.md §3).
func Concat(input, witness []field.Element) []field.Element {
	out := make([]field.Element, 0, len(input)+len(witness))
	out = append(out, input...)
	out = append(out, witness...)
	return out
}
