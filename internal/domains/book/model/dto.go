package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// SaveBookRequest creates or updates a book (admin only).
type SaveBookRequest struct {
	Title       string    `json:"title"`
	AuthorID    uuid.UUID `json:"author_id"`
	Genre       string    `json:"genre"`
	Description string    `json:"description"`
	Rating      int       `json:"rating"`
}

func (r SaveBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.AuthorID,
			validation.By(func(value interface{}) error {
				if id, ok := value.(uuid.UUID); !ok || id == uuid.Nil {
					return validation.NewError("validation_author_id", "author_id is required")
				}
				return nil
			}),
		),
		validation.Field(&r.Rating, validation.Min(0), validation.Max(5)),
	)
}

// BookSummary is a catalog/search result row with review aggregation.
type BookSummary struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Genre        string    `json:"genre,omitempty"`
	Rating       int       `json:"rating"`
	Author       string    `json:"author"`
	AuthorID     uuid.UUID `json:"author_id"`
	ReviewCount  int       `json:"review_count"`
	AverageScore float64   `json:"average_score"`
}

// BookDetail is the full book view with its review collection.
type BookDetail struct {
	BookSummary
	Description string        `json:"description,omitempty"`
	Comments    []CommentInfo `json:"comments"`
	CreatedAt   time.Time     `json:"created_at"`
}

// NewBookSummary aggregates review data for a catalog row.
func NewBookSummary(b *Book) BookSummary {
	summary := BookSummary{
		ID:          b.ID,
		Title:       b.Title,
		Genre:       b.Genre,
		Rating:      b.Rating,
		Author:      b.Author.DisplayName(),
		AuthorID:    b.AuthorID,
		ReviewCount: len(b.Comments),
	}

	if len(b.Comments) > 0 {
		total := 0
		for _, c := range b.Comments {
			total += c.Score
		}
		summary.AverageScore = float64(total) / float64(len(b.Comments))
	}

	return summary
}

// NewBookDetail builds the detail view.
func NewBookDetail(b *Book) BookDetail {
	comments := b.Comments
	if comments == nil {
		comments = []CommentInfo{}
	}

	return BookDetail{
		BookSummary: NewBookSummary(b),
		Description: b.Description,
		Comments:    comments,
		CreatedAt:   b.CreatedAt,
	}
}
