package types

import "errors"

// ErrInvalidInput marks values rejected at the boundary: keys of the wrong
// shape, instants without a zone, unparseable locale tags.
var ErrInvalidInput = errors.New("invalid input")
