package model

import (
	"time"

	"github.com/google/uuid"

	"library-backend/internal/shared/authz"
)

// User is a registered member of the library.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         authz.Role `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
