package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/author/model"
)

type fakeAuthorRepository struct {
	authors   map[uuid.UUID]*model.Author
	withBooks map[uuid.UUID]bool
}

func newFakeAuthorRepository() *fakeAuthorRepository {
	return &fakeAuthorRepository{
		authors:   make(map[uuid.UUID]*model.Author),
		withBooks: make(map[uuid.UUID]bool),
	}
}

func (r *fakeAuthorRepository) Create(_ context.Context, a *model.Author) (*model.Author, error) {
	a.ID = uuid.New()
	cp := *a
	r.authors[a.ID] = &cp
	return a, nil
}

func (r *fakeAuthorRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Author, error) {
	if a, ok := r.authors[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, model.ErrAuthorNotFound
}

func (r *fakeAuthorRepository) List(_ context.Context) ([]*model.Author, error) {
	out := make([]*model.Author, 0, len(r.authors))
	for _, a := range r.authors {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeAuthorRepository) Update(_ context.Context, a *model.Author) (*model.Author, error) {
	if _, ok := r.authors[a.ID]; !ok {
		return nil, model.ErrAuthorNotFound
	}
	cp := *a
	r.authors[a.ID] = &cp
	return a, nil
}

func (r *fakeAuthorRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.authors[id]; !ok {
		return model.ErrAuthorNotFound
	}
	if r.withBooks[id] {
		return model.ErrAuthorHasBooks
	}
	delete(r.authors, id)
	return nil
}

func TestCreateAuthor(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepository())

	resp, err := svc.Create(context.Background(), model.SaveAuthorRequest{
		Name:    "Ursula",
		Surname: "Le Guin",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ursula Le Guin", resp.DisplayName)
}

func TestCreateAuthorValidation(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepository())

	_, err := svc.Create(context.Background(), model.SaveAuthorRequest{Name: "Ursula"})
	assert.Error(t, err, "surname is required")
}

func TestDeleteAuthorWithBooks(t *testing.T) {
	repo := newFakeAuthorRepository()
	svc := NewAuthorService(repo)

	resp, err := svc.Create(context.Background(), model.SaveAuthorRequest{Name: "Frank", Surname: "Herbert"})
	require.NoError(t, err)

	id := uuid.MustParse(resp.ID)
	repo.withBooks[id] = true

	err = svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, model.ErrAuthorHasBooks)
}

func TestGetUnknownAuthor(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepository())

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}
