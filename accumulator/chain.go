package accumulator

import (
	"fmt"

	"github.com/arcfold/arcfold/params"
	"github.com/arcfold/arcfold/r1cs"
)

// Chain is the supplemented IVC harness spec.md's distillation leaves
// implicit: repeatedly NARK-prove a front end, fold the result into a
// running accumulator, and verify each fold, so a caller never has to
// hand-wire prove/fold/verify for a multi-step run itself (spec.md §8's
// 5-fold/50-fold scenarios).
type Chain struct {
	key  *r1cs.Key
	p    params.Params
	inst Instance
	wit  Witness
}

// NewChain starts a chain at the zero accumulator for a circuit with key.
func NewChain(key *r1cs.Key, p params.Params) (*Chain, error) {
	inst, wit, err := Zero(key.Info.NumVariables())
	if err != nil {
		return nil, err
	}
	return &Chain{key: key, p: p, inst: inst, wit: wit}, nil
}

// Instance returns the chain's current running accumulator instance.
func (c *Chain) Instance() Instance { return c.inst }

// Witness returns the chain's current running accumulator witness.
func (c *Chain) Witness() Witness { return c.wit }

// Step runs fe once through the NARK, folds the resulting proof into the
// chain's accumulator, verifies the fold, and advances the chain's state.
// It returns the FoldingProof in case the caller wants to audit it
// independently, and an error both on any failure along the prove/fold
// path and when Verify disagrees with the fold it just performed.
func (c *Chain) Step(fe r1cs.FrontEnd) (*FoldingProof, error) {
	nark, err := r1cs.Prove(c.key, fe)
	if err != nil {
		return nil, fmt.Errorf("chain: nark proof failed: %w", err)
	}

	newInst, newWit, proof, err := Fold(c.key, c.p, c.inst, c.wit, nark)
	if err != nil {
		return nil, fmt.Errorf("chain: fold failed: %w", err)
	}

	if !Verify(c.p, c.inst, c.wit, *newInst, *newWit, nark, proof) {
		return nil, fmt.Errorf("chain: fold produced a proof that failed verification")
	}

	c.inst, c.wit = *newInst, *newWit
	return proof, nil
}

// Decide runs the decider against the chain's current accumulator.
func (c *Chain) Decide() bool {
	return Decide(c.key, c.inst, c.wit)
}
