package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/feedback_ai/backend/internal/models"
)

// FileStore keeps every review in one JSON array on disk and rewrites the
// whole file on each save.
type FileStore struct {
	Path string

	mu sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// EnsureInitialized writes an empty array when the file is missing or its
// top-level value is not an array. Records that fail to decode are kept.
func (s *FileStore) EnsureInitialized(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.loadRaw(); err == nil {
		return nil
	}
	return s.save([]models.Review{})
}

func (s *FileStore) Load(ctx context.Context) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save replaces the whole log with reviews.
func (s *FileStore) Save(ctx context.Context, reviews []models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(reviews)
}

// Append runs load, append and save under one lock so concurrent
// submissions cannot overwrite each other. Existing elements are carried over
// verbatim; a file whose top level is not an array counts as empty.
func (s *FileStore) Append(ctx context.Context, review models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.loadRaw()
	if err != nil {
		raw = []json.RawMessage{}
	}
	b, err := json.Marshal(review)
	if err != nil {
		return fmt.Errorf("encode review: %w", err)
	}
	return s.write(append(raw, b))
}

func (s *FileStore) load() ([]models.Review, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}

	reviews := []models.Review{}
	if err := json.Unmarshal(b, &reviews); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	// a literal null decodes without error but is not a list
	if reviews == nil {
		return nil, fmt.Errorf("%w: top-level value is not an array", ErrCorrupt)
	}
	return reviews, nil
}

// loadRaw checks only the shape of the file: a top-level array.
func (s *FileStore) loadRaw() ([]json.RawMessage, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: top-level value is not an array", ErrCorrupt)
	}
	return raw, nil
}

func (s *FileStore) save(reviews []models.Review) error {
	if reviews == nil {
		reviews = []models.Review{}
	}
	return s.write(reviews)
}

func (s *FileStore) write(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode reviews: %w", err)
	}
	if err := os.WriteFile(s.Path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.Path, err)
	}
	return nil
}
