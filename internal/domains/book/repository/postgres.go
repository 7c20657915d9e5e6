package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book/model"
	"library-backend/pkg/cache"
)

// Cache key constants. Comment writes invalidate with the "book*" pattern,
// so every key here must share that prefix.
const (
	bookCacheKeyPrefix = "book:"
	catalogCacheKey    = "books:catalog"
	cacheTTL           = 5 * time.Minute
)

type postgresBookRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresBookRepository(pool *pgxpool.Pool, cache cache.Cache) BookRepository {
	return &postgresBookRepository{pool: pool, cache: cache}
}

func (r *postgresBookRepository) GetCatalog(ctx context.Context) ([]*model.Book, error) {
	var books []*model.Book
	if found, err := r.cache.Get(ctx, catalogCacheKey, &books); err == nil && found {
		return books, nil
	}

	query := `
		SELECT
			b.id, b.title, b.author_id, b.genre, b.description, b.rating,
			b.created_at, b.updated_at,
			a.name, a.surname
		FROM books b
		JOIN authors a ON a.id = b.author_id
		ORDER BY b.created_at, b.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]*model.Book)
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.AuthorID,
			&b.Genre,
			&b.Description,
			&b.Rating,
			&b.CreatedAt,
			&b.UpdatedAt,
			&b.Author.Name,
			&b.Author.Surname,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		b.Author.ID = b.AuthorID
		books = append(books, &b)
		byID[b.ID] = &b
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog: %w", err)
	}

	if err := r.attachComments(ctx, byID); err != nil {
		return nil, err
	}

	r.cache.Set(ctx, catalogCacheKey, books, cacheTTL)

	return books, nil
}

func (r *postgresBookRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	cacheKey := bookCacheKeyPrefix + id.String()

	var cached model.Book
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `
		SELECT
			b.id, b.title, b.author_id, b.genre, b.description, b.rating,
			b.created_at, b.updated_at,
			a.name, a.surname
		FROM books b
		JOIN authors a ON a.id = b.author_id
		WHERE b.id = $1
	`

	var b model.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Title,
		&b.AuthorID,
		&b.Genre,
		&b.Description,
		&b.Rating,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.Author.Name,
		&b.Author.Surname,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	b.Author.ID = b.AuthorID

	if err := r.attachComments(ctx, map[uuid.UUID]*model.Book{b.ID: &b}); err != nil {
		return nil, err
	}

	r.cache.Set(ctx, cacheKey, b, cacheTTL)

	return &b, nil
}

// attachComments loads the review collections for the given books in
// insertion order.
func (r *postgresBookRepository) attachComments(ctx context.Context, byID map[uuid.UUID]*model.Book) error {
	if len(byID) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	query := `
		SELECT id, book_id, user_id, text, score, created_at
		FROM comments
		WHERE book_id = ANY($1)
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookID uuid.UUID
		var c model.CommentInfo
		if err := rows.Scan(&c.ID, &bookID, &c.UserID, &c.Text, &c.Score, &c.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan comment: %w", err)
		}
		if b, ok := byID[bookID]; ok {
			b.Comments = append(b.Comments, c)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating comments: %w", err)
	}

	return nil
}

func (r *postgresBookRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
		INSERT INTO books (title, author_id, genre, description, rating)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		b.Title,
		b.AuthorID,
		b.Genre,
		b.Description,
		b.Rating,
	).Scan(&b.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	r.invalidate(ctx, b.ID)

	return r.GetByID(ctx, b.ID)
}

func (r *postgresBookRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
		UPDATE books
		SET title = $2, author_id = $3, genre = $4, description = $5, rating = $6,
		    updated_at = NOW()
		WHERE id = $1
	`

	cmdTag, err := r.pool.Exec(ctx, query,
		b.ID,
		b.Title,
		b.AuthorID,
		b.Genre,
		b.Description,
		b.Rating,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return nil, model.ErrBookNotFound
	}

	r.invalidate(ctx, b.ID)

	return r.GetByID(ctx, b.ID)
}

func (r *postgresBookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM books WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	r.invalidate(ctx, id)

	return nil
}

func (r *postgresBookRepository) invalidate(ctx context.Context, id uuid.UUID) {
	r.cache.Delete(ctx, bookCacheKeyPrefix+id.String(), catalogCacheKey)
}
