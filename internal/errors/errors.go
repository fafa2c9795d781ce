package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in tenant"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ExpiredError represents an error when an entity's expiry has passed
type ExpiredError struct {
	Entity string
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("%s has expired", e.Entity)
}

// Is enables errors.Is() comparison for ExpiredError
func (e *ExpiredError) Is(target error) bool {
	t, ok := target.(*ExpiredError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// GenerationExhaustedError represents an error when the bounded retry budget
// for generating a unique value ran out without producing one
type GenerationExhaustedError struct {
	Entity   string
	Attempts int
}

func (e *GenerationExhaustedError) Error() string {
	return fmt.Sprintf("could not generate a unique %s after %d attempts", e.Entity, e.Attempts)
}

// Is enables errors.Is() comparison for GenerationExhaustedError
func (e *GenerationExhaustedError) Is(target error) bool {
	t, ok := target.(*GenerationExhaustedError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// Entity Not Found Errors
var (
	ErrTenantNotFound      = &NotFoundError{Entity: "tenant"}
	ErrStudentNotFound     = &NotFoundError{Entity: "student"}
	ErrWorksheetNotFound   = &NotFoundError{Entity: "worksheet"}
	ErrInviteLinkNotFound  = &NotFoundError{Entity: "invite link"}
	ErrUserProfileNotFound = &NotFoundError{Entity: "user profile"}
)

// Already Exists Errors
var (
	ErrTenantExists     = &AlreadyExistsError{Entity: "tenant", Context: "with this subdomain"}
	ErrStudentExists    = &AlreadyExistsError{Entity: "student", Context: "with this username in the tenant"}
	ErrInviteCodeExists = &AlreadyExistsError{Entity: "invite link", Context: "with this code"}
)

// Lifecycle Errors
var (
	ErrInviteLinkExpired   = &ExpiredError{Entity: "invite link"}
	ErrInviteCodeExhausted = &GenerationExhaustedError{Entity: "invite code", Attempts: 5}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExpired checks if an error is an ExpiredError
func IsExpired(err error) bool {
	var expiredErr *ExpiredError
	return errors.As(err, &expiredErr)
}

// IsGenerationExhausted checks if an error is a GenerationExhaustedError
func IsGenerationExhausted(err error) bool {
	var exhaustedErr *GenerationExhaustedError
	return errors.As(err, &exhaustedErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewGenerationExhaustedError creates a new GenerationExhaustedError
func NewGenerationExhaustedError(entity string, attempts int) error {
	return &GenerationExhaustedError{Entity: entity, Attempts: attempts}
}
