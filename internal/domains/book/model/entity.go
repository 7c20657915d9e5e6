package model

import (
	"time"

	"github.com/google/uuid"
)

// Book is a catalog record. Rating is the editorial rating set by
// administrators, independent of member review scores.
type Book struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	AuthorID    uuid.UUID `json:"author_id"`
	Genre       string    `json:"genre"`
	Description string    `json:"description"`
	Rating      int       `json:"rating"`

	Author   AuthorInfo    `json:"author"`
	Comments []CommentInfo `json:"comments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorInfo is the author projection carried by catalog results.
type AuthorInfo struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Surname string    `json:"surname"`
}

func (a AuthorInfo) DisplayName() string {
	return a.Name + " " + a.Surname
}

// CommentInfo is the review projection attached to a book, in insertion
// order.
type CommentInfo struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"text"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
