package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanDelete(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	t.Run("owner can delete own comment", func(t *testing.T) {
		assert.True(t, CanDelete(owner, owner, RoleUser))
	})

	t.Run("admin can delete any comment", func(t *testing.T) {
		assert.True(t, CanDelete(owner, stranger, RoleAdmin))
	})

	t.Run("non-owner user cannot delete", func(t *testing.T) {
		assert.False(t, CanDelete(owner, stranger, RoleUser))
	})

	t.Run("unknown role cannot delete others", func(t *testing.T) {
		assert.False(t, CanDelete(owner, stranger, Role("moderator")))
	})
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleUser, ParseRole("user"))
	// Anything unrecognized degrades to the least privileged role.
	assert.Equal(t, RoleUser, ParseRole("superuser"))
	assert.Equal(t, RoleUser, ParseRole(""))
}
