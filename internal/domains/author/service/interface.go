package service

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/author/model"
)

// ServiceInterface is the author business logic contract.
type ServiceInterface interface {
	Create(ctx context.Context, req model.SaveAuthorRequest) (*model.AuthorResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*model.AuthorResponse, error)
	List(ctx context.Context) ([]model.AuthorResponse, error)
	Update(ctx context.Context, id uuid.UUID, req model.SaveAuthorRequest) (*model.AuthorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
