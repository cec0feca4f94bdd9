package contact

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("invalid contact request")
	ErrDelivery   = errors.New("contact notification could not be handed to the mail transport")
)

// Validation codes carried by ValidationError.
const (
	CodeRequired       = "required"
	CodeInvalidEmail   = "invalid_email"
	CodeUnknownService = "unknown_service"
	CodeTooLong        = "too_long"
)

// ValidationError names the first field that made a request unacceptable.
// Limit is set for CodeTooLong.
type ValidationError struct {
	Field string
	Code  string
	Limit int
}

func (e *ValidationError) Error() string {
	if e.Code == CodeTooLong {
		return fmt.Sprintf("%s: field %q exceeds %d characters", ErrValidation, e.Field, e.Limit)
	}
	return fmt.Sprintf("%s: field %q %s", ErrValidation, e.Field, e.Code)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
