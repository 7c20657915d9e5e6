package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SaveAuthorRequest creates or updates an author.
type SaveAuthorRequest struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	BirthYear   string `json:"birth_year"`
	Description string `json:"description"`
}

func (r SaveAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Surname,
			validation.Required.Error("surname is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.BirthYear, validation.Length(0, 16)),
	)
}

// AuthorResponse is the outward author shape.
type AuthorResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	DisplayName string `json:"display_name"`
	BirthYear   string `json:"birth_year,omitempty"`
	Description string `json:"description,omitempty"`
}

func NewAuthorResponse(a *Author) AuthorResponse {
	return AuthorResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Surname:     a.Surname,
		DisplayName: a.DisplayName(),
		BirthYear:   a.BirthYear,
		Description: a.Description,
	}
}
