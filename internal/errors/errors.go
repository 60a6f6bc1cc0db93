// Package errors defines the error taxonomy used across the bot. Every kind
// carries a stable code so handlers can pick the right reply without string
// matching.
package errors

import (
	"errors"
	"fmt"
)

// Standard error codes for the application.
const (
	CodeUnknown      = "UNKNOWN"
	CodeDatabase     = "DATABASE"
	CodeValidation   = "VALIDATION"
	CodeAPI          = "API"
	CodeConfig       = "CONFIG"
	CodeUnauthorized = "UNAUTHORIZED"
	CodePrecondition = "PRECONDITION"
)

// ApplicationError is the interface that all our custom errors implement.
type ApplicationError interface {
	error
	Code() string
	Unwrap() error
}

// Error represents a basic application error.
type Error struct {
	code    string
	message string
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}

	return e.message
}

func (e *Error) Code() string {
	return e.code
}

func (e *Error) Unwrap() error {
	return e.err
}

// Code returns the code of the first ApplicationError in err's chain,
// or CodeUnknown if there is none.
func Code(err error) string {
	var appErr ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Code()
	}

	return CodeUnknown
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	return err != nil && Code(err) == code
}

// baseError lets the kinds below embed *Error without a field named Error
// shadowing the Error method.
type baseError = Error

func newError(code, message string, cause error) *baseError {
	return &baseError{code: code, message: message, err: cause}
}

// DatabaseError wraps failures of the local store.
type DatabaseError struct{ *baseError }

func NewDatabaseError(message string, cause error) error {
	return &DatabaseError{newError(CodeDatabase, message, cause)}
}

// ValidationError marks malformed user input, e.g. a command with the wrong
// number of arguments.
type ValidationError struct{ *baseError }

func NewValidationError(message string, cause error) error {
	return &ValidationError{newError(CodeValidation, message, cause)}
}

// APIError marks a failed call to the messaging platform.
type APIError struct{ *baseError }

func NewAPIError(message string, cause error) error {
	return &APIError{newError(CodeAPI, message, cause)}
}

type ConfigError struct{ *baseError }

func NewConfigError(message string, cause error) error {
	return &ConfigError{newError(CodeConfig, message, cause)}
}

// UnauthorizedError marks a privileged action attempted by a non-admin.
type UnauthorizedError struct{ *baseError }

func NewUnauthorizedError(message string) error {
	return &UnauthorizedError{newError(CodeUnauthorized, message, nil)}
}

// PreconditionError marks an action invoked in the wrong context, such as a
// group-only command sent in a private chat.
type PreconditionError struct{ *baseError }

func NewPreconditionError(message string) error {
	return &PreconditionError{newError(CodePrecondition, message, nil)}
}
