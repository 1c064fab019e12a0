package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/feedback_ai/backend/internal/ai"
	"github.com/feedback_ai/backend/internal/db"
	"github.com/feedback_ai/backend/internal/metrics"
	"github.com/feedback_ai/backend/internal/models"
)

const (
	idLayout        = "20060102150405"
	timestampLayout = "2006-01-02 15:04:05"
)

type FeedbackService struct {
	Store    db.ReviewStore
	Pipeline *Pipeline
	Logger   zerolog.Logger
	IDs      *IDGenerator
	Now      func() time.Time
}

func NewFeedbackService(store db.ReviewStore, client *ai.Client, logger zerolog.Logger) *FeedbackService {
	return &FeedbackService{
		Store:    store,
		Pipeline: &Pipeline{AI: client, Logger: logger},
		Logger:   logger,
		IDs:      &IDGenerator{},
		Now:      time.Now,
	}
}

func (s *FeedbackService) AIEnabled() bool {
	return s.Pipeline.AI.Enabled()
}

// Submit generates the reply for a validated review and persists the record.
// Only a storage failure is returned as an error.
func (s *FeedbackService) Submit(ctx context.Context, rating int, text string) (models.Review, error) {
	// Generation and storage finish even if the client goes away.
	ctx = context.WithoutCancel(ctx)
	resp := s.Pipeline.ProduceResponse(ctx, rating, text)

	now := s.Now()
	review := models.Review{
		ID:         s.IDs.Next(now),
		Timestamp:  now.Format(timestampLayout),
		Rating:     rating,
		Review:     text,
		AIResponse: resp.CustomerResponse,
		AISummary:  resp.Summary,
		AIActions:  resp.Suggestions,
	}

	if err := s.Store.Append(ctx, review); err != nil {
		return models.Review{}, fmt.Errorf("save review: %w", err)
	}
	metrics.RecordSubmission(rating)

	s.Logger.Info().
		Str("review_id", review.ID).
		Int("rating", rating).
		Str("summary", truncate(review.AISummary, 50)).
		Msg("review submitted")
	return review, nil
}

// Export returns every stored review in submission order.
func (s *FeedbackService) Export(ctx context.Context) []models.Review {
	return s.load(ctx)
}

func (s *FeedbackService) Stats(ctx context.Context) (models.Stats, []models.Review) {
	reviews := s.load(ctx)
	stats := ComputeStats(reviews)
	stats.AIEnabled = s.AIEnabled()
	return stats, reviews
}

// load treats unreadable storage as "no data yet".
func (s *FeedbackService) load(ctx context.Context) []models.Review {
	reviews, err := s.Store.Load(ctx)
	if err != nil {
		s.Logger.Warn().Err(err).Msg("failed to load reviews, treating store as empty")
		return []models.Review{}
	}
	if reviews == nil {
		return []models.Review{}
	}
	return reviews
}

// IDGenerator issues timestamp ids with microsecond precision that strictly
// increase, even for calls within the same microsecond.
type IDGenerator struct {
	mu   sync.Mutex
	last time.Time
}

func (g *IDGenerator) Next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now = now.Truncate(time.Microsecond)
	if !now.After(g.last) {
		now = g.last.Add(time.Microsecond)
	}
	g.last = now
	return fmt.Sprintf("%s%06d", now.Format(idLayout), now.Nanosecond()/1000)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
