// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrMissingID     = errors.New("entry has no identifier")
	ErrInvalidStatus = errors.New("status inválido")
	ErrInvalidType   = errors.New("tipo de lançamento inválido")
)

// ValidationError reports a business-rule violation. It is always
// recoverable: the caller corrects the input and retries.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a ValidationError with the given reason.
func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AuthenticationError reports a failed credential check. It is surfaced
// to the caller as an authorization failure and never retried.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return e.Reason
}

// NewAuthenticationError creates an AuthenticationError with the given reason.
func NewAuthenticationError(reason string) error {
	return &AuthenticationError{Reason: reason}
}

// IsAuthenticationError reports whether err is (or wraps) an AuthenticationError.
func IsAuthenticationError(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}

// IsError reports whether err matches the target sentinel error.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
