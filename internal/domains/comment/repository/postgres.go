package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/comment/model"
	"library-backend/pkg/cache"
)

type postgresCommentRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresCommentRepository(pool *pgxpool.Pool, cache cache.Cache) CommentRepository {
	return &postgresCommentRepository{pool: pool, cache: cache}
}

func (r *postgresCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	query := `
		SELECT id, book_id, user_id, text, score, created_at, updated_at
		FROM comments
		WHERE id = $1
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresCommentRepository) GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*model.Comment, error) {
	query := `
		SELECT id, book_id, user_id, text, score, created_at, updated_at
		FROM comments
		WHERE id = $1 AND user_id = $2
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, id, userID))
}

func (r *postgresCommentRepository) GetByBookAndUser(ctx context.Context, bookID, userID uuid.UUID) (*model.Comment, error) {
	query := `
		SELECT id, book_id, user_id, text, score, created_at, updated_at
		FROM comments
		WHERE book_id = $1 AND user_id = $2
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, bookID, userID))
}

func (r *postgresCommentRepository) scanOne(row pgx.Row) (*model.Comment, error) {
	c := &model.Comment{}
	err := row.Scan(
		&c.ID,
		&c.BookID,
		&c.UserID,
		&c.Text,
		&c.Score,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return c, nil
}

// Upsert inserts the review, or overwrites text and score in place when the
// (book, user) row already exists. The ON CONFLICT arm makes two concurrent
// first submissions converge on a single row instead of racing to insert.
func (r *postgresCommentRepository) Upsert(ctx context.Context, comment *model.Comment) error {
	query := `
		INSERT INTO comments (book_id, user_id, text, score)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT comments_book_user_key
		DO UPDATE SET text = EXCLUDED.text, score = EXCLUDED.score, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		comment.BookID,
		comment.UserID,
		comment.Text,
		comment.Score,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return model.ErrBookNotFound
		}
		return fmt.Errorf("failed to upsert comment: %w", err)
	}

	r.invalidate(ctx)

	return nil
}

func (r *postgresCommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	query := `
		UPDATE comments
		SET text = $2, score = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		comment.ID,
		comment.Text,
		comment.Score,
	).Scan(&comment.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrCommentNotFound
		}
		return fmt.Errorf("failed to update comment: %w", err)
	}

	r.invalidate(ctx)

	return nil
}

func (r *postgresCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM comments WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}

	r.invalidate(ctx)

	return nil
}

func (r *postgresCommentRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]*model.Comment, error) {
	query := `
		SELECT id, book_id, user_id, text, score, created_at, updated_at
		FROM comments
		WHERE book_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		c := &model.Comment{}
		if err := rows.Scan(
			&c.ID,
			&c.BookID,
			&c.UserID,
			&c.Text,
			&c.Score,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}

func (r *postgresCommentRepository) BookExists(ctx context.Context, bookID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, bookID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check book: %w", err)
	}

	return exists, nil
}

// Comment writes change the review collections and aggregates embedded in
// cached books, so every book cache entry is dropped.
func (r *postgresCommentRepository) invalidate(ctx context.Context) {
	r.cache.DeletePattern(ctx, "book*")
}
