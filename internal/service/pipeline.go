package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/feedback_ai/backend/internal/ai"
	"github.com/feedback_ai/backend/internal/metrics"
	"github.com/feedback_ai/backend/internal/models"
)

const (
	OutcomeAI         = "ai"
	OutcomeDisabled   = "disabled"
	OutcomeFailed     = "failed"
	OutcomeIncomplete = "incomplete"
)

type Pipeline struct {
	AI     *ai.Client
	Logger zerolog.Logger
}

// ProduceResponse always returns a usable reply: generated when possible,
// otherwise the fallback entry for rating.
func (p *Pipeline) ProduceResponse(ctx context.Context, rating int, review string) models.AIResponse {
	resp, outcome := p.generate(ctx, rating, review)
	metrics.RecordGeneration(outcome)
	if outcome == OutcomeAI {
		return resp
	}

	p.Logger.Debug().Int("rating", rating).Str("outcome", outcome).Msg("using fallback response")
	return FallbackFor(rating)
}

func (p *Pipeline) generate(ctx context.Context, rating int, review string) (models.AIResponse, string) {
	if !p.AI.Enabled() {
		return models.AIResponse{}, OutcomeDisabled
	}

	raw, ok := p.AI.Generate(ctx, ai.BuildPrompt(rating, review))
	if !ok {
		return models.AIResponse{}, OutcomeFailed
	}

	resp, err := ai.ParseResponse(raw)
	if err != nil {
		p.Logger.Warn().Err(err).Int("raw_len", len(raw)).Msg("ai output could not be parsed")
		return models.AIResponse{}, OutcomeIncomplete
	}
	return resp, OutcomeAI
}
