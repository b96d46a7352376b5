// Package errors provides standardized error handling patterns for
// linestream components. It classifies failures into the four categories the
// reader driver distinguishes (configuration, malformed input, schema
// conflict, stream I/O) and includes helper functions for consistent error
// wrapping and classification across the system.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorConfiguration represents setup errors (bad charset, policy, or
	// precision value) that are fatal before any parsing starts
	ErrorConfiguration ErrorClass = iota
	// ErrorMalformed represents grammar or type violations on a single
	// physical line, recoverable per the reader's policy
	ErrorMalformed
	// ErrorConflict represents an incompatible schema column type that no
	// widening rule can resolve, recoverable per the reader's policy
	ErrorConflict
	// ErrorStream represents underlying I/O failures, always fatal
	ErrorStream
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorConfiguration:
		return "configuration"
	case ErrorMalformed:
		return "malformed"
	case ErrorConflict:
		return "conflict"
	case ErrorStream:
		return "stream"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Configuration errors
	ErrUnknownCharset   = errors.New("unknown character set")
	ErrUnknownPolicy    = errors.New("unknown malformed-data policy")
	ErrUnknownPrecision = errors.New("unknown timestamp precision")
	ErrInvalidConfig    = errors.New("invalid configuration")

	// Reader lifecycle errors
	ErrReaderClosed = errors.New("reader already closed")
	ErrReadFailed   = errors.New("source read failed")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsConfiguration checks if an error is a fatal setup error
func IsConfiguration(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorConfiguration
	}

	return errors.Is(err, ErrUnknownCharset) ||
		errors.Is(err, ErrUnknownPolicy) ||
		errors.Is(err, ErrUnknownPrecision) ||
		errors.Is(err, ErrInvalidConfig)
}

// IsMalformed checks if an error is a per-line grammar or type violation
func IsMalformed(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorMalformed
	}

	return false
}

// IsConflict checks if an error is an unreconcilable schema column conflict
func IsConflict(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorConflict
	}

	return false
}

// IsStream checks if an error is a fatal I/O failure
func IsStream(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorStream
	}

	return errors.Is(err, ErrReadFailed) || errors.Is(err, ErrReaderClosed)
}

// IsRecoverable reports whether a WARN-policy reader may skip the failed
// line and continue. Configuration and stream errors are never recoverable.
func IsRecoverable(err error) bool {
	return IsMalformed(err) || IsConflict(err)
}

// Classify returns the error class for an error. Unclassified errors
// default to ErrorStream so unknown failures abort the read rather than
// being silently skipped.
func Classify(err error) ErrorClass {
	if IsConfiguration(err) {
		return ErrorConfiguration
	}
	if IsMalformed(err) {
		return ErrorMalformed
	}
	if IsConflict(err) {
		return ErrorConflict
	}
	return ErrorStream
}

// newClassified creates a new classified error
// This is an internal helper - use the Wrap* functions instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapConfiguration wraps an error as a fatal setup error with context
func WrapConfiguration(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorConfiguration, wrappedErr, component, method, wrappedErr.Error())
}

// WrapMalformed wraps an error as a per-line grammar violation with context
func WrapMalformed(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorMalformed, wrappedErr, component, method, wrappedErr.Error())
}

// WrapConflict wraps an error as a schema column conflict with context
func WrapConflict(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorConflict, wrappedErr, component, method, wrappedErr.Error())
}

// WrapStream wraps an error as a fatal I/O failure with context
func WrapStream(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorStream, wrappedErr, component, method, wrappedErr.Error())
}
