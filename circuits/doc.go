// Package circuits provides small, hand-rolled r1cs.FrontEnd
// implementations used by tests and the end-to-end folding scenarios
// (spec.md §8). The front end is explicitly out of the core's scope
// (spec.md §1/§6): these circuits trust their own Prove method to compute
// witnesses honestly rather than enforcing hash correctness with an
// in-circuit gadget, the same simplification vybium-starks-vm's
// CreateFibonacciR1CS/CreateFibonacciWitness generator pair makes for its
// own toy constraint systems.
package circuits
