package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a member's review of a book: free text plus a 1-5 score.
// At most one comment exists per (BookID, UserID) pair; the comments table
// enforces this with a unique constraint.
type Comment struct {
	ID     uuid.UUID `json:"id"`
	BookID uuid.UUID `json:"book_id"`
	UserID uuid.UUID `json:"user_id"`

	Text  string `json:"text"`
	Score int    `json:"score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
