package merkle

import "errors"

// ErrEmptyTree is returned when Commit is called with no leaves.
var ErrEmptyTree = errors.New("merkle: cannot commit to an empty leaf set")

// ErrIndexOutOfRange is returned by Open when the requested leaf index does
// not exist in the (padded) tree.
var ErrIndexOutOfRange = errors.New("merkle: leaf index out of range")
