// ABOUTME: Contract violation errors for misuse of the escape-sequence builders
// ABOUTME: Kept distinct from I/O errors so callers can tell misuse from sink failure

package iterm2

import (
	"errors"
	"fmt"
)

var (
	// ErrPercentOutOfRange is reported for a percentage greater than 100.
	ErrPercentOutOfRange = errors.New("percent cannot be greater than 100")

	// ErrCoordinatesWithoutLength is reported when an annotation has
	// coordinates but no length; that layout has no serialization.
	ErrCoordinatesWithoutLength = errors.New("annotation coordinates require a length")
)

// ContractError describes a caller-side misuse of the API.
type ContractError struct {
	Op     string
	Reason string
	Err    error
}

func (e *ContractError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("iterm2: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("iterm2: %s: %v (%s)", e.Op, e.Err, e.Reason)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// IsContractViolation reports whether err, or anything it wraps, is a
// *ContractError.
func IsContractViolation(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}
