package ai

import (
	"context"
	"errors"
)

var (
	ErrMissingCredentials = errors.New("ai provider credentials are not set")
	ErrEmptyResponse      = errors.New("empty ai response")
)

// Provider is a single text-generation backend. Implementations make exactly
// one upstream call per Generate; retries belong to Client.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}
