// Package errors provides the structured error types used across the Nereid
// client. Every error is created with a stack trace via cockroachdb/errors and
// carries typed fields that marshal into zerolog events for structured output.
//
// The taxonomy mirrors the engine's client-side failure modes: unknown
// parameter names at construction, type mismatches on parameter assignment,
// bad values on request submission, and use of an untrained model handle.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// UnknownParameterError is returned when an estimator is constructed with a
// parameter name outside its recognized set. It carries the offending name and
// the value that was supplied with it.
type UnknownParameterError struct {
	Param string
	Value interface{}
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("nereid: unknown parameter %s = %v", e.Param, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *UnknownParameterError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param", e.Param).
		Interface("value", e.Value).
		Str("type", "UnknownParameterError")
}

// NewUnknownParameterError creates an UnknownParameterError with a stack trace.
func NewUnknownParameterError(param string, value interface{}) error {
	err := &UnknownParameterError{Param: param, Value: value}
	return errors.WithStack(err)
}

// ValidationError is returned when a parameter setter rejects a value whose
// type (or enumerated membership) does not match the field's declared
// constraint.
type ValidationError struct {
	Param    string
	Expected string
	Value    interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("nereid: validation failed for parameter '%s': expected %s (got: %v)", e.Param, e.Expected, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param", e.Param).
		Str("expected", e.Expected).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace.
func NewValidationError(param, expected string, value interface{}) error {
	err := &ValidationError{Param: param, Expected: expected, Value: value}
	return errors.WithStack(err)
}

// ValueError is returned when an argument is structurally wrong for an
// operation, such as passing something other than a frame reference where a
// data table is required, or an importance table with too few rows to plot.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("nereid: %s: %s", e.Op, e.Message)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValueError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("message", e.Message).
		Str("type", "ValueError")
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// NotFittedError is returned when an operation requires a trained model but
// the estimator has not been submitted for training yet.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("nereid: %s: this estimator is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}
