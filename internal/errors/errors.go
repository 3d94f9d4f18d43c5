package errors

import (
	"errors"
	"fmt"
	"net/http"
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
	Context string // Additional context like "for this email"
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

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// InvariantViolationError is returned when an operation would break a tenancy
// invariant (zero owners, zero admins, cross-org grant). Status carries the
// HTTP status the call site answers with; it is 400 or 403 depending on the route.
type InvariantViolationError struct {
	Status  int
	Message string
}

func (e *InvariantViolationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for InvariantViolationError
func (e *InvariantViolationError) Is(target error) bool {
	t, ok := target.(*InvariantViolationError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrMemberNotFound       = &NotFoundError{Entity: "member"}
	ErrDsoNotFound          = &NotFoundError{Entity: "workspace"}
	ErrAccessGrantNotFound  = &NotFoundError{Entity: "access grant"}
	ErrInviteNotFound       = &NotFoundError{Entity: "invite"}
	ErrDoctorNotFound       = &NotFoundError{Entity: "doctor"}
	ErrDataTableNotFound    = &NotFoundError{Entity: "data table"}
)

// Already Exists Errors
var (
	ErrAlreadyInOrganization = &AlreadyExistsError{Entity: "organization membership", Context: "for this user"}
	ErrInviteExists          = &AlreadyExistsError{Entity: "invite", Context: "for this email"}
	ErrMemberExists          = &AlreadyExistsError{Entity: "member", Context: "in this organization"}
	ErrAccessGrantExists     = &AlreadyExistsError{Entity: "access grant", Context: "for this user and workspace"}
	ErrDataTableExists       = &AlreadyExistsError{Entity: "data table", Context: "with this name in the workspace"}
)

// Invariant Violations
var (
	ErrLastOwnerRemoval = &InvariantViolationError{
		Status:  http.StatusForbidden,
		Message: "Cannot remove the last owner of the organization. Transfer ownership first.",
	}
	ErrLastOwnerDemotion = &InvariantViolationError{
		Status:  http.StatusForbidden,
		Message: "Cannot change the role of the last owner of the organization. Transfer ownership first.",
	}
	ErrLastAdminRemoval = &InvariantViolationError{
		Status:  http.StatusBadRequest,
		Message: "Cannot remove the last admin. At least one admin is required.",
	}
	ErrLastAdminDemotion = &InvariantViolationError{
		Status:  http.StatusBadRequest,
		Message: "Cannot change role of the last admin. At least one admin is required.",
	}
	ErrMemberIsLastWorkspaceAdmin = &InvariantViolationError{
		Status:  http.StatusBadRequest,
		Message: "Cannot remove member: they are the last admin of a workspace. At least one admin is required.",
	}
	ErrDsoNotInOrganization = &InvariantViolationError{
		Status:  http.StatusForbidden,
		Message: "DSO not in this organization",
	}
	ErrUserNotInOrganization = &InvariantViolationError{
		Status:  http.StatusBadRequest,
		Message: "User is not a member of this organization",
	}
)

// Authorization Errors
var (
	ErrOwnerRequired        = &AuthorizationError{Message: "Only owners can grant, revoke or remove ownership"}
	ErrOwnerOrAdminRequired = &AuthorizationError{Message: "Owner or admin access required"}
	ErrWorkspaceAdminNeeded = &AuthorizationError{Message: "Workspace admin access required"}
	ErrNoOrganization       = &AuthorizationError{Message: "You are not a member of any organization"}
)

// Business Logic Errors
var (
	ErrInviteNotPending = &ValidationError{Field: "status", Message: "only pending invites can be cancelled"}
	ErrInvalidOrgRole   = &ValidationError{Field: "role", Message: "must be one of owner, admin, member"}
	ErrInvalidDsoRole   = &ValidationError{Field: "role", Message: "must be one of admin, manager, viewer"}
	ErrUnauthenticated  = &AuthenticationError{Message: "Unauthorized"}
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

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// AsInvariantViolation returns the InvariantViolationError in err's chain, if any
func AsInvariantViolation(err error) (*InvariantViolationError, bool) {
	var invErr *InvariantViolationError
	if errors.As(err, &invErr) {
		return invErr, true
	}
	return nil, false
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

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
