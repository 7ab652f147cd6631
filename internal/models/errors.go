package models

import "fmt"

// ValidationError rejects bad input before any store contact.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// StoreError wraps a failed read or write against the result store. Callers
// surface the message and leave previously displayed state unchanged.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// AuthError signals failed admin authentication.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }
