package circuits

import (
	"github.com/arcfold/arcfold/field"
	"github.com/arcfold/arcfold/merkle"
	"github.com/arcfold/arcfold/r1cs"
)

// Chain is a stateful front end for driving repeated folds: each call to
// Prove advances an internal (a, b) pair the way a Fibonacci-style
// recurrence would, a_{i+1} = b_i, b_{i+1} = H(a_i, b_i), except the next
// hash input also participates so an accumulator folding many links sees a
// fresh instance every step (spec.md §8's 5-fold/50-fold scenarios).
//
// The public instance each step is (one, a_i, b_i): the constant wire and
// the running state; the
// witness is (h_i, a_{i+1}, b_{i+1}). As with HashCheck, the constraint
// system only enforces the linear hand-off a_{i+1} = b_i and
// b_{i+1} = h_i — h_i's correctness as H(a_i, b_i) is Prove's
// responsibility, not an in-circuit gadget's.
type Chain struct {
	A, B field.Element
}

var _ r1cs.FrontEnd = (*Chain)(nil)

// NewChain seeds a chain at (a0, b0).
func NewChain(a0, b0 field.Element) *Chain {
	return &Chain{A: a0, B: b0}
}

// Setup returns the fixed matrices for z = [one, a, b, h, a_next, b_next].
func (c *Chain) Setup() (a, b, cm r1cs.Matrix, numInstance, numWitness, numConstraints int, err error) {
	a = r1cs.Matrix{
		{{Coeff: field.One(), Col: 4}}, // a_next
		{{Coeff: field.One(), Col: 5}}, // b_next
	}
	b = r1cs.Matrix{
		{{Coeff: field.One(), Col: 0}}, // one
		{{Coeff: field.One(), Col: 0}}, // one
	}
	cm = r1cs.Matrix{
		{{Coeff: field.One(), Col: 2}}, // b (a_next = b)
		{{Coeff: field.One(), Col: 3}}, // h (b_next = h)
	}
	return a, b, cm, 3, 3, 2, nil
}

// Prove computes h = H(a, b), advances the internal state to
// (b, h), and returns the step's instance/witness pair.
func (c *Chain) Prove() (input, witness []field.Element, numConstraints int, err error) {
	h := merkle.Hash(c.A, c.B)
	aNext, bNext := c.B, h

	input = []field.Element{field.One(), c.A, c.B}
	witness = []field.Element{h, aNext, bNext}

	c.A, c.B = aNext, bNext
	return input, witness, 2, nil
}
