package ai

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// ClientConfig bounds a single Generate call.
type ClientConfig struct {
	MaxAttempts    int
	RetryDelay     time.Duration
	AttemptTimeout time.Duration
}

// DefaultClientConfig allows two attempts one second apart, 20s each.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		MaxAttempts:    2,
		RetryDelay:     time.Second,
		AttemptTimeout: 20 * time.Second,
	}
}

// Client wraps a Provider with a bounded retry and a process-wide kill switch.
// Once every attempt of a single Generate call fails, the client stays
// disabled until the process restarts.
type Client struct {
	provider Provider
	cfg      ClientConfig
	logger   zerolog.Logger
	enabled  atomic.Bool
}

// NewClient returns a client that is enabled iff provider is non-nil.
func NewClient(provider Provider, cfg ClientConfig, logger zerolog.Logger) *Client {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	c := &Client{provider: provider, cfg: cfg, logger: logger}
	c.enabled.Store(provider != nil)
	return c
}

func (c *Client) Enabled() bool {
	return c != nil && c.enabled.Load()
}

func (c *Client) ProviderName() string {
	if c == nil || c.provider == nil {
		return "none"
	}
	return c.provider.Name()
}

// Generate returns the trimmed provider output, or false when the client is
// disabled or every attempt failed. A cancelled caller context ends the call
// without disabling the client.
func (c *Client) Generate(ctx context.Context, prompt string) (string, bool) {
	if !c.Enabled() {
		return "", false
	}
	if ctx.Err() != nil {
		return "", false
	}

	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		text, err := c.attempt(ctx, prompt)
		if err == nil {
			return text, true
		}
		c.logger.Warn().
			Err(err).
			Str("provider", c.provider.Name()).
			Int("attempt", attempt).
			Int("max_attempts", c.cfg.MaxAttempts).
			Msg("ai generation attempt failed")

		if attempt < c.cfg.MaxAttempts {
			if !sleep(ctx, c.cfg.RetryDelay) {
				break
			}
		}
	}

	if err := ctx.Err(); err != nil {
		c.logger.Warn().Err(err).Str("provider", c.provider.Name()).Msg("ai generation abandoned by caller")
		return "", false
	}
	if c.enabled.CompareAndSwap(true, false) {
		c.logger.Error().Str("provider", c.provider.Name()).Msg("ai generation disabled after repeated failures")
	}
	return "", false
}

func (c *Client) attempt(ctx context.Context, prompt string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()

	if c.cfg.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.AttemptTimeout)
		defer cancel()
	}

	out, err := c.provider.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
