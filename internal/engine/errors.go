package engine

import (
	"errors"

	"sessionbook/internal/domain/booking"
	"sessionbook/internal/domain/request"
)

// Code classifies why a call was rejected. Every failed entry point aborts
// with one of these; no partial state is ever left behind.
type Code string

const (
	// CodeUnauthorized: caller is not the required identity for the action.
	CodeUnauthorized Code = "UNAUTHORIZED"
	// CodeSelfDealing: caller holds the right role but is the counterparty
	// of their own record (host booking own slot, guest accepting own
	// request).
	CodeSelfDealing Code = "SELF_DEALING"
	// CodeTooEarly: action attempted before its earliest valid time.
	CodeTooEarly Code = "TOO_EARLY"
	// CodeWindowClosed: the record's relevant window has passed.
	CodeWindowClosed Code = "WINDOW_CLOSED"
	// CodeBadState: the record's status does not permit the action.
	CodeBadState Code = "BAD_STATE"
	// CodeNotFound: no record with the given id.
	CodeNotFound Code = "NOT_FOUND"
	// CodeFunds: a token movement failed (balance, allowance).
	CodeFunds Code = "FUNDS"
	// CodeInvalidInput: a parameter fails its type-level bounds.
	CodeInvalidInput Code = "INVALID_INPUT"
)

type Error struct {
	Code Code
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return string(e.Code) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Code) + ": " + e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

func fail(code Code, msg string) error {
	return &Error{Code: code, msg: msg}
}

func failWrap(code Code, msg string, err error) error {
	return &Error{Code: code, msg: msg, err: err}
}

// IsCode reports whether err carries the given rejection code.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// transitionErr maps domain transition errors onto the engine taxonomy.
func transitionErr(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, booking.ErrTooEarly):
		return failWrap(CodeTooEarly, msg, err)
	case errors.Is(err, booking.ErrWindowClosed):
		return failWrap(CodeWindowClosed, msg, err)
	case errors.Is(err, booking.ErrInvalidStatus), errors.Is(err, request.ErrAlreadyClosed):
		return failWrap(CodeBadState, msg, err)
	case errors.Is(err, booking.ErrInvalidOutcome):
		return failWrap(CodeInvalidInput, msg, err)
	default:
		return failWrap(CodeInvalidInput, msg, err)
	}
}
