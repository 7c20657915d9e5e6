package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/author/model"
)

type postgresAuthorRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAuthorRepository(pool *pgxpool.Pool) AuthorRepository {
	return &postgresAuthorRepository{pool: pool}
}

func (r *postgresAuthorRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
		INSERT INTO authors (name, surname, birth_year, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, surname, birth_year, description, created_at, updated_at
	`

	var created model.Author
	err := r.pool.QueryRow(ctx, query,
		a.Name,
		a.Surname,
		a.BirthYear,
		a.Description,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Surname,
		&created.BirthYear,
		&created.Description,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresAuthorRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	query := `
		SELECT id, name, surname, birth_year, description, created_at, updated_at
		FROM authors
		WHERE id = $1
	`

	var a model.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Surname,
		&a.BirthYear,
		&a.Description,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return &a, nil
}

func (r *postgresAuthorRepository) List(ctx context.Context) ([]*model.Author, error) {
	query := `
		SELECT id, name, surname, birth_year, description, created_at, updated_at
		FROM authors
		ORDER BY surname, name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	var authors []*model.Author
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Surname,
			&a.BirthYear,
			&a.Description,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresAuthorRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
		UPDATE authors
		SET name = $2, surname = $3, birth_year = $4, description = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, surname, birth_year, description, created_at, updated_at
	`

	var updated model.Author
	err := r.pool.QueryRow(ctx, query,
		a.ID,
		a.Name,
		a.Surname,
		a.BirthYear,
		a.Description,
	).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Surname,
		&updated.BirthYear,
		&updated.Description,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return &updated, nil
}

func (r *postgresAuthorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM authors WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return model.ErrAuthorHasBooks
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	return nil
}
