package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/book/model"
)

type fakeBookRepository struct {
	catalog []*model.Book
}

func (r *fakeBookRepository) GetCatalog(context.Context) ([]*model.Book, error) {
	return r.catalog, nil
}

func (r *fakeBookRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Book, error) {
	for _, b := range r.catalog {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, model.ErrBookNotFound
}

func (r *fakeBookRepository) Create(context.Context, *model.Book) (*model.Book, error) {
	return nil, errors.New("unexpected call: Create")
}

func (r *fakeBookRepository) Update(context.Context, *model.Book) (*model.Book, error) {
	return nil, errors.New("unexpected call: Update")
}

func (r *fakeBookRepository) Delete(context.Context, uuid.UUID) error {
	return errors.New("unexpected call: Delete")
}

func testCatalog() *fakeBookRepository {
	tolkien := model.AuthorInfo{ID: uuid.New(), Name: "John", Surname: "Tolkien"}
	herbert := model.AuthorInfo{ID: uuid.New(), Name: "Frank", Surname: "Herbert"}
	king := model.AuthorInfo{ID: uuid.New(), Name: "Stephen", Surname: "King"}

	return &fakeBookRepository{catalog: []*model.Book{
		{
			ID: uuid.New(), Title: "The Fellowship of the Ring",
			AuthorID: tolkien.ID, Author: tolkien,
		},
		{
			ID: uuid.New(), Title: "Dune",
			AuthorID: herbert.ID, Author: herbert,
			Comments: []model.CommentInfo{
				{ID: uuid.New(), UserID: uuid.New(), Text: "a classic", Score: 5},
				{ID: uuid.New(), UserID: uuid.New(), Text: "slow start", Score: 4},
			},
		},
		{
			ID: uuid.New(), Title: "The Shining",
			AuthorID: king.ID, Author: king,
		},
	}}
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	svc := NewBookService(testCatalog())

	results, err := svc.Search(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	svc := NewBookService(testCatalog())

	for _, q := range []string{"TOLKIEN", "tolkien", "ToLkIeN"} {
		results, err := svc.Search(context.Background(), q)
		require.NoError(t, err)
		require.Len(t, results, 1, "query %q", q)
		assert.Equal(t, "The Fellowship of the Ring", results[0].Title)
	}
}

func TestSearchMatchesSubstringAcrossFields(t *testing.T) {
	svc := NewBookService(testCatalog())

	// "ing" hits two titles (Ring, Shining) and one surname (King).
	results, err := svc.Search(context.Background(), "ing")

	require.NoError(t, err)
	titles := make([]string, 0, len(results))
	for _, r := range results {
		titles = append(titles, r.Title)
	}
	assert.ElementsMatch(t, []string{"The Fellowship of the Ring", "The Shining"}, titles)
}

func TestSearchByAuthorFirstName(t *testing.T) {
	svc := NewBookService(testCatalog())

	results, err := svc.Search(context.Background(), "frank")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Dune", results[0].Title)
}

func TestSearchNoMatches(t *testing.T) {
	svc := NewBookService(testCatalog())

	results, err := svc.Search(context.Background(), "austen")

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchIsDeterministic(t *testing.T) {
	svc := NewBookService(testCatalog())

	first, err := svc.Search(context.Background(), "the")
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), "the")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCatalogCarriesReviewAggregates(t *testing.T) {
	svc := NewBookService(testCatalog())

	results, err := svc.Catalog(context.Background())
	require.NoError(t, err)

	var dune *model.BookSummary
	for i := range results {
		if results[i].Title == "Dune" {
			dune = &results[i]
		}
	}
	require.NotNil(t, dune)
	assert.Equal(t, 2, dune.ReviewCount)
	assert.InDelta(t, 4.5, dune.AverageScore, 0.001)
	assert.Equal(t, "Frank Herbert", dune.Author)
}

func TestGetUnknownBook(t *testing.T) {
	svc := NewBookService(testCatalog())

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}
