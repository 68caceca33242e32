package errors

import (
	"fmt"
)

// Error enriches the built-in error interface with an HTTP-like status code
// and an optional cause.
type Error interface {
	error

	Code() int
	Message() string
	Cause() error
}

// DefaultCode is used when no code is given. It is set to 500,
// Internal Server Error.
var DefaultCode = 500

type richError struct {
	code  int
	msg   string
	cause *richError
}

func (err *richError) Error() string {
	if err.cause == nil {
		return err.msg
	}

	return fmt.Sprintf("%s: %v", err.msg, err.cause)
}

func (err *richError) Code() int { return err.code }

func (err *richError) Message() string { return err.msg }

func (err *richError) Cause() error {
	if err.cause == nil {
		return nil
	}
	return err.cause
}

// ErrorEnricher modifies an error, typically to attach a code or a cause.
// Enrichers return nil for a nil input.
type ErrorEnricher func(error) error

func New(msg string, fs ...ErrorEnricher) error {
	var err error = &richError{
		code:  DefaultCode,
		msg:   msg,
		cause: nil,
	}

	for _, f := range fs {
		err = f(err)
	}

	return err
}

func WithCode(code int) ErrorEnricher {
	return func(err error) error {
		switch err := err.(type) {
		case nil:
			return nil
		case *richError:
			err.code = code
			return err
		}

		return &richError{
			code:  code,
			msg:   err.Error(),
			cause: nil,
		}
	}
}

func WithCause(cause error) ErrorEnricher {
	richCause := asRichError(cause)

	return func(err error) error {
		switch err := err.(type) {
		case nil:
			return nil
		case *richError:
			err.cause = richCause
			return err
		}

		return &richError{
			code:  richCause.code,
			msg:   err.Error(),
			cause: richCause,
		}
	}
}

func asRichError(err error) *richError {
	if err, ok := err.(*richError); ok {
		return err
	}

	return &richError{code: DefaultCode, msg: err.Error(), cause: nil}
}
