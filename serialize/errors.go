package serialize

import "errors"

// ErrTruncated is returned when a buffer ends before a declared length
// prefix or fixed-width field has been fully consumed.
var ErrTruncated = errors.New("serialize: truncated input")
