package model

import (
	"time"

	"github.com/google/uuid"
)

// Author is a catalog author record.
type Author struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	BirthYear   string    `json:"birth_year"`
	Description string    `json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName is the presentation form used across catalog views.
func (a *Author) DisplayName() string {
	return a.Name + " " + a.Surname
}
