// Package service holds the business rules for the sample note resource.
// Handlers stay thin; stores stay pure I/O.
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"stackpad/internal/api/store"
	"stackpad/pkg/httputil"
	"stackpad/pkg/requestcontext"
)

const (
	maxTitleLen = 200
	maxBodyLen  = 10_000
)

// Notes coordinates validation and persistence for notes.
type Notes struct {
	store store.NoteStore
}

// NewNotes builds the notes service over any NoteStore.
func NewNotes(s store.NoteStore) *Notes {
	return &Notes{store: s}
}

// CreateInput is the caller-supplied part of a note.
type CreateInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Create validates the input, stamps identity and creation time, and
// persists the note.
func (n *Notes) Create(ctx context.Context, in CreateInput) (store.Note, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return store.Note{}, httputil.NewError(httputil.CodeBadRequest, "title is required")
	}
	if len(title) > maxTitleLen {
		return store.Note{}, httputil.NewError(httputil.CodeBadRequest, "title too long")
	}
	if len(in.Body) > maxBodyLen {
		return store.Note{}, httputil.NewError(httputil.CodeBadRequest, "body too long")
	}

	note := store.Note{
		ID:        uuid.New(),
		Title:     title,
		Body:      in.Body,
		CreatedAt: requestcontext.Now(ctx).UTC(),
	}
	if err := n.store.Create(ctx, note); err != nil {
		return store.Note{}, err
	}
	return note, nil
}

// Get fetches one note by ID.
func (n *Notes) Get(ctx context.Context, id uuid.UUID) (store.Note, error) {
	return n.store.Get(ctx, id)
}

// List returns all notes in creation order.
func (n *Notes) List(ctx context.Context) ([]store.Note, error) {
	return n.store.List(ctx)
}

// Delete removes a note by ID.
func (n *Notes) Delete(ctx context.Context, id uuid.UUID) error {
	return n.store.Delete(ctx, id)
}
