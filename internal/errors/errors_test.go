package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "workspace"}
		assert.Equal(t, "workspace not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		assert.True(t, errors.Is(&NotFoundError{Entity: "invite"}, ErrInviteNotFound))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrDsoNotFound, ErrOrganizationNotFound))
	})

	t.Run("IsNotFound through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("lookup failed: %w", ErrMemberNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.False(t, IsNotFound(errors.New("plain")))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "invite already exists for this email", ErrInviteExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "grant"}
		assert.Equal(t, "grant already exists", err.Error())
	})

	t.Run("IsAlreadyExists", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(fmt.Errorf("create: %w", ErrAccessGrantExists)))
		assert.False(t, IsAlreadyExists(ErrDsoNotFound))
	})
}

func TestValidationError(t *testing.T) {
	assert.Equal(t, "validation error: role - must be one of admin, manager, viewer", ErrInvalidDsoRole.Error())
	assert.Equal(t, "validation error: bad", NewValidationError("", "bad").Error())
	assert.True(t, IsValidation(ErrInviteNotPending))
}

func TestInvariantViolationError(t *testing.T) {
	t.Run("status differs by call site", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, ErrLastOwnerRemoval.Status)
		assert.Equal(t, http.StatusBadRequest, ErrLastAdminRemoval.Status)
		assert.Equal(t, http.StatusForbidden, ErrDsoNotInOrganization.Status)
		assert.Equal(t, http.StatusBadRequest, ErrUserNotInOrganization.Status)
	})

	t.Run("AsInvariantViolation unwraps", func(t *testing.T) {
		inv, ok := AsInvariantViolation(fmt.Errorf("remove: %w", ErrLastOwnerRemoval))
		assert.True(t, ok)
		assert.Equal(t, "Cannot remove the last owner of the organization. Transfer ownership first.", inv.Message)

		_, ok = AsInvariantViolation(ErrDsoNotFound)
		assert.False(t, ok)
	})

	t.Run("errors.Is matches by message", func(t *testing.T) {
		assert.True(t, errors.Is(ErrLastAdminDemotion, ErrLastAdminDemotion))
		assert.False(t, errors.Is(ErrLastAdminDemotion, ErrLastAdminRemoval))
	})
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrUnauthenticated))
	assert.True(t, IsAuthorization(ErrOwnerOrAdminRequired))
	assert.False(t, IsAuthorization(ErrUnauthenticated))
	assert.Equal(t, "Owner or admin access required", NewAuthorizationError("Owner or admin access required").Error())
}
