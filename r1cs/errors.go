package r1cs

import "errors"

// ErrFrontEndFailure wraps an error surfaced verbatim from the
// constraint-synthesis front-end (spec.md §7 FrontEndFailure).
var ErrFrontEndFailure = errors.New("r1cs: front end failure")

// ErrPreconditionMismatch is returned by Prove when the front-end's
// declared or actual shapes disagree with the prover key's IndexInfo
// (spec.md §7 PreconditionMismatch).
var ErrPreconditionMismatch = errors.New("r1cs: precondition mismatch")
