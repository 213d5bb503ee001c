package eval

import (
	"errors"
)

// Evaluation failures abort the whole call; each kind is matchable with
// errors.Is on the wrapped error returned by Evaluate.
var (
	ErrUnboundVariable     = errors.New("unbound variable")
	ErrInvalidNumericInput = errors.New("invalid numeric input")
	ErrArityMismatch       = errors.New("arity mismatch")
)
