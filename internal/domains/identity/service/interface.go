package service

import (
	"context"

	"library-backend/internal/domains/identity/model"
)

type ServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.UserResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	// Seed provisions the default admin and member accounts if they do not
	// exist yet. Idempotent, called once at startup.
	Seed(ctx context.Context) error
}
