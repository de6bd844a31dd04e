package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrNotFound ErrorCode = iota + 1000
	ErrBadRequest
	ErrConnection
	ErrPrerequisite
	ErrCancelled
	ErrValidation
	ErrInternal
)

// Error constructors
func NewNotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func NewBadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    ErrBadRequest,
		Message: message,
		Err:     err,
	}
}

func NewConnection(target string, err error) *AppError {
	return &AppError{
		Code:    ErrConnection,
		Message: fmt.Sprintf("failed to connect to %s", target),
		Err:     err,
	}
}

// NewPrerequisite reports a reference entity that must exist before a batch can run.
func NewPrerequisite(resource string) *AppError {
	return &AppError{
		Code:    ErrPrerequisite,
		Message: fmt.Sprintf("no %s found", resource),
	}
}

// NewCancelled marks a step the operator declined. Not a failure.
func NewCancelled(step string) *AppError {
	return &AppError{
		Code:    ErrCancelled,
		Message: fmt.Sprintf("%s cancelled by user", step),
	}
}

func NewValidation(kind string, err error) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Message: fmt.Sprintf("invalid %s", kind),
		Err:     err,
	}
}

func NewInternal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal error",
		Err:     err,
	}
}

// CodeOf returns the code of the first AppError in err's chain, or ErrInternal.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal
}

func IsCancelled(err error) bool {
	return err != nil && CodeOf(err) == ErrCancelled
}

func IsPrerequisite(err error) bool {
	return err != nil && CodeOf(err) == ErrPrerequisite
}
