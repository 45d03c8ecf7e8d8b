package accumulator

import "errors"

// ErrPreconditionMismatch is returned by Fold when a declared length or a
// recomputed root disagrees with what the caller supplied (spec.md §7).
var ErrPreconditionMismatch = errors.New("accumulator: precondition mismatch")
