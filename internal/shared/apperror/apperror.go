package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the HTTP boundary
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindNotFound
	KindAuthentication
	KindAuthorization
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindConflict:
		return "conflict"
	default:
		return "unexpected"
	}
}

// Error is a domain error carrying the message sent back to the client.
// Err is the underlying cause and is never serialized.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Constructors

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Validationf(format string, args ...any) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

func Authorization(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Unexpected wraps a store or verifier fault. The fault message is passed
// through to the client.
func Unexpected(err error) *Error {
	msg := "internal server error"
	if err != nil {
		msg = err.Error()
	}
	return &Error{Kind: KindUnexpected, Message: msg, Err: err}
}

// KindOf returns the kind of err, KindUnexpected when err is not an *Error
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}

// MessageOf returns the client-facing message of err
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// HTTPStatus maps a kind to its default status code.
// Handlers override NotFound where an endpoint answers 400 instead.
func HTTPStatus(k Kind) int {
	switch k {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthentication:
		return http.StatusForbidden
	case KindAuthorization:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
