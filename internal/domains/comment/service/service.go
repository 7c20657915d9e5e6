package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"library-backend/internal/domains/comment/model"
	"library-backend/internal/domains/comment/repository"
	"library-backend/internal/shared/authz"
)

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) ServiceInterface {
	return &commentService{commentRepo: commentRepo}
}

func (s *commentService) Submit(ctx context.Context, bookID, userID uuid.UUID, req model.SubmitCommentRequest) (*model.Comment, error) {
	if userID == uuid.Nil {
		return nil, model.ErrUnauthenticated
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.commentRepo.BookExists(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to check book: %w", err)
	}
	if !exists {
		return nil, model.ErrBookNotFound
	}

	// Clients may address their review by id or simply re-post to the book.
	// Either way at most one row exists per (book, member), so both paths
	// land on the same review.
	existing, err := s.resolve(ctx, bookID, userID, req.CommentID)
	if err != nil && !errors.Is(err, model.ErrCommentNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.Text = req.Text
		existing.Score = req.Score
		if err := s.commentRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	comment := &model.Comment{
		BookID: bookID,
		UserID: userID,
		Text:   req.Text,
		Score:  req.Score,
	}

	// Upsert rather than insert: a concurrent first submission from the
	// same member may have created the row after resolve saw nothing.
	if err := s.commentRepo.Upsert(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) resolve(ctx context.Context, bookID, userID uuid.UUID, commentID *uuid.UUID) (*model.Comment, error) {
	if commentID != nil && *commentID != uuid.Nil {
		return s.commentRepo.GetByIDAndUser(ctx, *commentID, userID)
	}
	return s.commentRepo.GetByBookAndUser(ctx, bookID, userID)
}

func (s *commentService) Delete(ctx context.Context, commentID, userID uuid.UUID, role authz.Role) error {
	if userID == uuid.Nil {
		return model.ErrUnauthenticated
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	// A denied caller gets the same answer as a missing review. Revealing
	// that the review exists would leak other members' activity.
	if !authz.CanDelete(comment.UserID, userID, role) {
		return model.ErrCommentNotFound
	}

	return s.commentRepo.Delete(ctx, commentID)
}

func (s *commentService) ListByBook(ctx context.Context, bookID uuid.UUID) ([]*model.Comment, error) {
	exists, err := s.commentRepo.BookExists(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to check book: %w", err)
	}
	if !exists {
		return nil, model.ErrBookNotFound
	}

	return s.commentRepo.ListByBook(ctx, bookID)
}
