package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"stackpad/pkg/platform/sentinel"
)

// PostgresStore persists notes in PostgreSQL. Pure I/O; no business rules.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres constructs a PostgreSQL-backed note store.
func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const schema = `
CREATE TABLE IF NOT EXISTS notes (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	body TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// EnsureSchema creates the notes table if it does not exist. The scaffold has
// no migration tool wired; replace this with real migrations when the schema
// grows a second table.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure notes schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Create(ctx context.Context, note Note) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO notes (id, title, body, created_at) VALUES ($1, $2, $3, $4)`,
		note.ID, note.Title, note.Body, note.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("create note %s: %w", note.ID, sentinel.ErrConflict)
		}
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (Note, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, title, body, created_at FROM notes WHERE id = $1`, id)

	var note Note
	if err := row.Scan(&note.ID, &note.Title, &note.Body, &note.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Note{}, fmt.Errorf("get note %s: %w", id, sentinel.ErrNotFound)
		}
		return Note{}, fmt.Errorf("get note: %w", err)
	}
	return note, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Note, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, body, created_at FROM notes ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]Note, 0)
	for rows.Next() {
		var note Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Body, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete note %s: %w", id, sentinel.ErrNotFound)
	}
	return nil
}
