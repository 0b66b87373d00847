// Package apperr holds the error kinds shared by the services. Each kind
// maps to exactly one HTTP status in the echo controllers.
package apperr

import "errors"

type Code string

const (
	InvalidArgument Code = "INVALID_ARGUMENT"
	NotFound        Code = "NOT_FOUND"
	Conflict        Code = "CONFLICT"
	InvalidState    Code = "INVALID_STATE"
	StoreFailure    Code = "STORE_FAILURE"
)

type Error struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(code Code, msg string) error { return &Error{Code: code, Msg: msg} }

func Wrap(code Code, err error, msg string) error {
	return &Error{Code: code, Msg: msg, Err: err}
}

// Store wraps an unexpected store error. Errors that already carry a
// code are returned untouched.
func Store(err error, msg string) error {
	if err == nil {
		return nil
	}
	if CodeOf(err) != "" {
		return err
	}
	return Wrap(StoreFailure, err, msg)
}

// CodeOf extracts the error code, or "" for uncoded errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Message returns the short diagnostic of a coded error without its cause.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return ""
}

func Is(err error, code Code) bool { return CodeOf(err) == code }
