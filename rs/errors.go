package rs

import "errors"

// ErrEncodeDegreeExceeded is returned when a coefficient vector longer than
// RATE is offered to the encoder (spec.md §7).
var ErrEncodeDegreeExceeded = errors.New("rs: coefficient vector exceeds RATE")
