package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"library-backend/internal/config"
	"library-backend/internal/domains/identity/model"
	"library-backend/internal/domains/identity/repository"
	"library-backend/internal/shared/authz"
	"library-backend/pkg/jwt"
)

// bcryptCost trades hashing time for resistance to offline cracking.
const bcryptCost = 12

type identityService struct {
	userRepo   repository.UserRepository
	jwtManager *jwt.Manager
	seed       config.SeedConfig
}

func NewIdentityService(userRepo repository.UserRepository, jwtManager *jwt.Manager, seed config.SeedConfig) ServiceInterface {
	return &identityService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		seed:       seed,
	}
}

func (s *identityService) Register(ctx context.Context, req model.RegisterRequest) (*model.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         authz.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	resp := model.NewUserResponse(user)
	return &resp, nil
}

func (s *identityService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Unknown email and wrong password look the same to the caller.
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.LoginResponse{
		Token: token,
		User:  model.NewUserResponse(user),
	}, nil
}

func (s *identityService) Seed(ctx context.Context) error {
	defaults := []struct {
		email    string
		password string
		role     authz.Role
	}{
		{s.seed.AdminEmail, s.seed.AdminPassword, authz.RoleAdmin},
		{s.seed.UserEmail, s.seed.UserPassword, authz.RoleUser},
	}

	users := make([]*model.User, 0, len(defaults))
	for _, d := range defaults {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		users = append(users, &model.User{
			Email:        d.email,
			PasswordHash: string(hash),
			Role:         d.role,
		})
	}

	return s.userRepo.SeedDefaults(ctx, users)
}
