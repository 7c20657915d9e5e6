package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// SubmitCommentRequest submits or resubmits a review. CommentID is optional:
// clients that remember their review id may resubmit by id, clients that
// simply re-post to the book may omit it. Both paths resolve to the same row.
type SubmitCommentRequest struct {
	CommentID *uuid.UUID `json:"comment_id,omitempty"`
	Text      string     `json:"text"`
	Score     int        `json:"score"`
}

func (r SubmitCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			validation.Length(1, 2000),
		),
		validation.Field(&r.Score,
			validation.Required.Error("score is required"),
			validation.Min(1).Error("score must be between 1 and 5"),
			validation.Max(5).Error("score must be between 1 and 5"),
		),
	)
}

// CommentResponse is the outward review shape.
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	BookID    uuid.UUID `json:"book_id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"text"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCommentResponse(c *Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		BookID:    c.BookID,
		UserID:    c.UserID,
		Text:      c.Text,
		Score:     c.Score,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
