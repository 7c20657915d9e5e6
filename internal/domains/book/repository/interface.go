package repository

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/book/model"
)

// BookRepository is the data access contract for the catalog. Read methods
// return books with their author projection and comments attached.
type BookRepository interface {
	// GetCatalog returns the whole catalog in stable (created_at, id) order.
	GetCatalog(ctx context.Context) ([]*model.Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	Create(ctx context.Context, b *model.Book) (*model.Book, error)
	Update(ctx context.Context, b *model.Book) (*model.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
