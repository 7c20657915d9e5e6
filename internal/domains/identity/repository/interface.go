package repository

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/identity/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// SeedDefaults inserts the given accounts in one transaction, skipping
	// any email that already exists. Safe to run on every startup.
	SeedDefaults(ctx context.Context, users []*model.User) error
}
