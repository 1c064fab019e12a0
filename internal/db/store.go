package db

import (
	"context"
	"errors"

	"github.com/feedback_ai/backend/internal/models"
)

// ErrCorrupt reports backing data that exists but cannot be decoded as a list of reviews.
var ErrCorrupt = errors.New("review store is corrupt")

// ReviewStore owns the ordered, append-only list of reviews.
type ReviewStore interface {
	EnsureInitialized(ctx context.Context) error
	Load(ctx context.Context) ([]models.Review, error)
	Append(ctx context.Context, review models.Review) error
}
