package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"stackpad/pkg/platform/sentinel"
)

// MemoryStore keeps notes in a mutex-guarded map. It is the default store
// when no database is configured and the fixture for handler/service tests.
type MemoryStore struct {
	mu    sync.RWMutex
	notes map[uuid.UUID]Note
}

// NewMemoryStore constructs an empty in-memory note store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{notes: make(map[uuid.UUID]Note)}
}

func (s *MemoryStore) Create(_ context.Context, note Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.notes[note.ID]; exists {
		return fmt.Errorf("create note %s: %w", note.ID, sentinel.ErrConflict)
	}
	s.notes[note.ID] = note
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	note, ok := s.notes[id]
	if !ok {
		return Note{}, fmt.Errorf("get note %s: %w", id, sentinel.ErrNotFound)
	}
	return note, nil
}

func (s *MemoryStore) List(_ context.Context) ([]Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Note, 0, len(s.notes))
	for _, note := range s.notes {
		out = append(out, note)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notes[id]; !ok {
		return fmt.Errorf("delete note %s: %w", id, sentinel.ErrNotFound)
	}
	delete(s.notes, id)
	return nil
}
