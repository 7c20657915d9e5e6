package repository

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/comment/model"
)

// CommentRepository persists reviews. One row per (book, user) pair is
// enforced by the comments_book_user_key constraint, so Upsert is the only
// write path that can create rows.
type CommentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*model.Comment, error)
	GetByBookAndUser(ctx context.Context, bookID, userID uuid.UUID) (*model.Comment, error)
	Upsert(ctx context.Context, comment *model.Comment) error
	Update(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]*model.Comment, error)
	BookExists(ctx context.Context, bookID uuid.UUID) (bool, error)
}
