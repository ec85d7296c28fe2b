// Package apperror defines the error kinds that travel from the data-access
// layer up to the transport boundary, where they are mapped to status codes.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for translation at the transport boundary.
type Kind int

const (
	KindOther Kind = iota
	KindValidation
	KindNotFound
	KindIntegrity
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindIntegrity:
		return "integrity"
	default:
		return "other"
	}
}

// Error is an error tagged with a Kind.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports that the requested record does not exist.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Validation reports malformed input.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Integrity wraps a constraint violation raised by the store during op.
func Integrity(op string, cause error) error {
	return &Error{Kind: KindIntegrity, Message: "integrity violation while " + op, Err: cause}
}

// KindOf returns the Kind of err, or KindOther when err carries none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindOther
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsIntegrity reports whether err is an integrity violation.
func IsIntegrity(err error) bool {
	return KindOf(err) == KindIntegrity
}
