package r1cs

import (
	"fmt"

	"github.com/arcfold/arcfold/field"
)

// IndexInfo records a circuit's shape: the constraint count and the split
// of num_variables into public input and private witness lengths. The
// split (NumInstance/NumWitness) is a supplemented accessor beyond
// spec.md's literal {num_constraints, num_variables} pair, used by Prove to
// check the front end's input and witness lengths separately.
type IndexInfo struct {
	NumConstraints int
	NumInstance    int
	NumWitness     int
}

// NumVariables returns |input| + |witness|, spec.md §3's num_variables.
func (ii IndexInfo) NumVariables() int { return ii.NumInstance + ii.NumWitness }

// Key bundles a circuit's index together with its full matrices. There is
// no trapdoor: spec.md §3 defines ProverKey = VerifierKey = DeciderKey, so
// a single Key type serves all three roles by value.
type Key struct {
	Info    IndexInfo
	A, B, C Matrix
}

// ProverKey, VerifierKey, and DeciderKey are the same type, named
// separately at call sites purely for documentation.
type (
	ProverKey   = Key
	VerifierKey = Key
	DeciderKey  = Key
)

// FrontEnd is the minimal contract the constraint-synthesis front-end must
// satisfy (spec.md §6). It is explicitly out of scope for this library —
// Setup and Prove are the only two hooks the NARK needs, and a host
// application is expected to implement this interface over whatever
// circuit DSL it already uses.
type FrontEnd interface {
	// Setup runs the front end in setup mode, returning the sparse
	// matrices and the (instance, witness, constraint) counts.
	Setup() (a, b, c Matrix, numInstance, numWitness, numConstraints int, err error)

	// Prove runs the front end in prove mode, returning the public input
	// and private witness assignments plus the constraint count it used.
	Prove() (input, witness []field.Element, numConstraints int, err error)
}

// Index runs fe in setup mode and packages the result into a Key
// (spec.md §4.4 "index(circuit) -> (pk, vk)"; pk == vk by value here).
func Index(fe FrontEnd) (*Key, error) {
	a, b, c, numInstance, numWitness, numConstraints, err := fe.Setup()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontEndFailure, err)
	}
	return &Key{
		Info: IndexInfo{
			NumConstraints: numConstraints,
			NumInstance:    numInstance,
			NumWitness:     numWitness,
		},
		A: a, B: b, C: c,
	}, nil
}
