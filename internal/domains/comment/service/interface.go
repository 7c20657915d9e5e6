package service

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/comment/model"
	"library-backend/internal/shared/authz"
)

// ServiceInterface is the review business logic contract.
type ServiceInterface interface {
	// Submit creates or overwrites the caller's review of a book. A member
	// holds at most one review per book; resubmitting replaces the text and
	// score of the existing row.
	Submit(ctx context.Context, bookID, userID uuid.UUID, req model.SubmitCommentRequest) (*model.Comment, error)
	// Delete removes a review. Only the owner or an admin may delete;
	// everyone else gets ErrCommentNotFound.
	Delete(ctx context.Context, commentID, userID uuid.UUID, role authz.Role) error
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]*model.Comment, error)
}
