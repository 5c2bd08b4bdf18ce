// Package store persists the sample note resource. Two implementations ship
// with the scaffold: an in-memory store for development and tests, and a
// Postgres store selected when DATABASE_URL is set.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Note is the sample resource the scaffold's API demonstrates.
type Note struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// NoteStore is pure I/O; validation and defaults belong to the service.
type NoteStore interface {
	Create(ctx context.Context, note Note) error
	Get(ctx context.Context, id uuid.UUID) (Note, error)
	List(ctx context.Context) ([]Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
