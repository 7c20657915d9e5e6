package service

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/book/model"
)

// ServiceInterface is the catalog business logic contract.
type ServiceInterface interface {
	// Catalog returns every book with review aggregates.
	Catalog(ctx context.Context) ([]model.BookSummary, error)
	// Search returns books whose title, author name, or author surname
	// contains the query, case-insensitively. An empty query matches all.
	Search(ctx context.Context, query string) ([]model.BookSummary, error)
	Get(ctx context.Context, id uuid.UUID) (*model.BookDetail, error)

	Create(ctx context.Context, req model.SaveBookRequest) (*model.BookDetail, error)
	Update(ctx context.Context, id uuid.UUID, req model.SaveBookRequest) (*model.BookDetail, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
