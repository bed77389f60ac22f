package services

import "errors"

// Kind classifies a service failure so handlers can pick the response.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindBadRequest
	KindPersistence
)

// genericFailure is all the client ever sees of a persistence error.
const genericFailure = "An error occurred. Please try again."

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error { return &Error{Kind: KindValidation, Message: msg} }
func NotFound(msg string) error   { return &Error{Kind: KindNotFound, Message: msg} }
func Forbidden(msg string) error  { return &Error{Kind: KindForbidden, Message: msg} }
func BadRequest(msg string) error { return &Error{Kind: KindBadRequest, Message: msg} }

// Persistence wraps an unexpected storage failure. The underlying error is kept for logs only.
func Persistence(err error) error {
	return &Error{Kind: KindPersistence, Message: genericFailure, Err: err}
}

var ErrEmptyCart = &Error{Kind: KindBadRequest, Message: "Your cart is empty."}

// KindOf returns the kind of a service error, or KindUnknown for anything else.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// MessageOf returns the user-facing message of err. Errors that did not come from
// a service get the generic failure text.
func MessageOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Message
	}
	return genericFailure
}
