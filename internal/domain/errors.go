package domain

import (
	"errors"
	"strings"
)

// Sentinel errors for domain-level error handling.
// The handler layer maps these to HTTP status codes.
var (
	ErrOrderNotFound      = errors.New("order_not_found")
	ErrInstrumentNotFound = errors.New("instrument_not_found")
)

// ValidationErrors carries every rule an order request violated, in the
// order the rules are evaluated. It is always non-empty when returned.
type ValidationErrors struct {
	Messages []string
}

func (e *ValidationErrors) Error() string {
	return strings.Join(e.Messages, "; ")
}
