// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates structural validation of submitted input failed.
	ErrValidation = errors.New("validation failed")

	// ErrModeration indicates content was rejected by the moderation filter.
	ErrModeration = errors.New("moderation rejected")

	// ErrUnavailable indicates the backing store failed or is unreachable.
	// An empty store returning no quote is a normal outcome, never this error.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     int64
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ModerationError provides context for moderation rejections.
// The message never echoes the flagged word back to the caller.
type ModerationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ModerationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("moderation rejected %s: %s", e.Field, e.Reason)
	}

	return "moderation rejected: " + e.Reason
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ModerationError) Unwrap() error {
	return ErrModeration
}

// NewModerationError creates a moderation error with context.
func NewModerationError(field, reason string) error {
	return &ModerationError{Field: field, Reason: reason}
}

// UnavailableError provides context for store faults.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsModeration checks if an error is a moderation error.
func IsModeration(err error) bool {
	return errors.Is(err, ErrModeration)
}

// IsUnavailable checks if an error is a store fault.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
