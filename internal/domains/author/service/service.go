package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"library-backend/internal/domains/author/model"
	"library-backend/internal/domains/author/repository"
)

type authorService struct {
	authorRepo repository.AuthorRepository
}

func NewAuthorService(authorRepo repository.AuthorRepository) ServiceInterface {
	return &authorService{authorRepo: authorRepo}
}

func (s *authorService) Create(ctx context.Context, req model.SaveAuthorRequest) (*model.AuthorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.authorRepo.Create(ctx, &model.Author{
		Name:        req.Name,
		Surname:     req.Surname,
		BirthYear:   req.BirthYear,
		Description: req.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	resp := model.NewAuthorResponse(created)
	return &resp, nil
}

func (s *authorService) Get(ctx context.Context, id uuid.UUID) (*model.AuthorResponse, error) {
	a, err := s.authorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := model.NewAuthorResponse(a)
	return &resp, nil
}

func (s *authorService) List(ctx context.Context) ([]model.AuthorResponse, error) {
	authors, err := s.authorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	responses := make([]model.AuthorResponse, 0, len(authors))
	for _, a := range authors {
		responses = append(responses, model.NewAuthorResponse(a))
	}

	return responses, nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req model.SaveAuthorRequest) (*model.AuthorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.authorRepo.Update(ctx, &model.Author{
		ID:          id,
		Name:        req.Name,
		Surname:     req.Surname,
		BirthYear:   req.BirthYear,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	resp := model.NewAuthorResponse(updated)
	return &resp, nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.authorRepo.Delete(ctx, id)
}
