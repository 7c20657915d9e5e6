package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/domains/book/repository"
)

type bookService struct {
	bookRepo repository.BookRepository
}

func NewBookService(bookRepo repository.BookRepository) ServiceInterface {
	return &bookService{bookRepo: bookRepo}
}

func (s *bookService) Catalog(ctx context.Context) ([]model.BookSummary, error) {
	return s.Search(ctx, "")
}

func (s *bookService) Search(ctx context.Context, query string) ([]model.BookSummary, error) {
	books, err := s.bookRepo.GetCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	// Matching is done here rather than in SQL so that it is ordinal and
	// independent of the database collation. Repository order is stable,
	// so repeated identical queries return identical sequences.
	term := strings.ToLower(query)

	summaries := make([]model.BookSummary, 0, len(books))
	for _, b := range books {
		if !matches(b, term) {
			continue
		}
		summaries = append(summaries, model.NewBookSummary(b))
	}

	return summaries, nil
}

// matches reports whether the lowercased term is a substring of the book
// title or its author's name or surname. The empty term matches everything.
func matches(b *model.Book, term string) bool {
	return strings.Contains(strings.ToLower(b.Title), term) ||
		strings.Contains(strings.ToLower(b.Author.Name), term) ||
		strings.Contains(strings.ToLower(b.Author.Surname), term)
}

func (s *bookService) Get(ctx context.Context, id uuid.UUID) (*model.BookDetail, error) {
	b, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := model.NewBookDetail(b)
	return &detail, nil
}

func (s *bookService) Create(ctx context.Context, req model.SaveBookRequest) (*model.BookDetail, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.bookRepo.Create(ctx, &model.Book{
		Title:       req.Title,
		AuthorID:    req.AuthorID,
		Genre:       req.Genre,
		Description: req.Description,
		Rating:      req.Rating,
	})
	if err != nil {
		return nil, err
	}

	detail := model.NewBookDetail(created)
	return &detail, nil
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req model.SaveBookRequest) (*model.BookDetail, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.bookRepo.Update(ctx, &model.Book{
		ID:          id,
		Title:       req.Title,
		AuthorID:    req.AuthorID,
		Genre:       req.Genre,
		Description: req.Description,
		Rating:      req.Rating,
	})
	if err != nil {
		return nil, err
	}

	detail := model.NewBookDetail(updated)
	return &detail, nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.bookRepo.Delete(ctx, id)
}
