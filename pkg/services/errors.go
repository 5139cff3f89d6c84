package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrTenantIsolation is returned when an access crosses a tenant boundary
	ErrTenantIsolation = errors.New("tenant isolation violation")

	// ErrUnauthorized is returned when webhook credentials do not match the tenant
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrTenantDisabled is returned when the resolved tenant is disabled
	ErrTenantDisabled = errors.New("tenant is disabled")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// RequireTenant asserts that an entity belongs to the requesting tenant.
// The engine's own lookups are parameterized by tenant and cannot cross the
// boundary by construction; this guard covers entities that arrive from the
// operator API already loaded.
func RequireTenant(entityTenantID, requestTenantID string) error {
	if entityTenantID != requestTenantID {
		return ErrTenantIsolation
	}
	return nil
}
