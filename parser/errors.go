package parser

import (
	"errors"
)

// Malformed input aborts the whole parse; both kinds are matchable with
// errors.Is on the wrapped error returned by Parse.
var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
)
