package ai

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type step struct {
	text  string
	err   error
	panic bool
}

type scriptedProvider struct {
	mu    sync.Mutex
	steps []step
	calls int
}

func (s *scriptedProvider) Name() string { return "scripted" }

func (s *scriptedProvider) Generate(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if len(s.steps) == 0 {
		return "", errors.New("script exhausted")
	}
	st := s.steps[0]
	s.steps = s.steps[1:]
	if st.panic {
		panic("boom")
	}
	return st.text, st.err
}

func testConfig() ClientConfig {
	return ClientConfig{MaxAttempts: 2, RetryDelay: time.Millisecond, AttemptTimeout: time.Second}
}

func TestClientDisabledWithoutProvider(t *testing.T) {
	c := NewClient(nil, testConfig(), zerolog.Nop())
	assert.False(t, c.Enabled())
	assert.Equal(t, "none", c.ProviderName())

	text, ok := c.Generate(context.Background(), "prompt")
	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestClientReturnsTrimmedText(t *testing.T) {
	p := &scriptedProvider{steps: []step{{text: "  hello \n"}}}
	c := NewClient(p, testConfig(), zerolog.Nop())

	text, ok := c.Generate(context.Background(), "prompt")
	require.True(t, ok)
	assert.Equal(t, "hello", text)
	assert.Equal(t, 1, p.calls)
	assert.True(t, c.Enabled())
}

func TestClientRetriesOnceThenSucceeds(t *testing.T) {
	p := &scriptedProvider{steps: []step{{err: errors.New("unavailable")}, {text: "ok"}}}
	c := NewClient(p, testConfig(), zerolog.Nop())

	text, ok := c.Generate(context.Background(), "prompt")
	require.True(t, ok)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 2, p.calls)
	assert.True(t, c.Enabled())
}

func TestClientDisablesAfterTwoFailures(t *testing.T) {
	p := &MockProvider{Fail: true}
	c := NewClient(p, testConfig(), zerolog.Nop())

	_, ok := c.Generate(context.Background(), "prompt")
	assert.False(t, ok)
	assert.Equal(t, 2, p.Calls())
	assert.False(t, c.Enabled())

	_, ok = c.Generate(context.Background(), "prompt")
	assert.False(t, ok)
	assert.Equal(t, 2, p.Calls(), "disabled client must not call the provider")
}

func TestClientTreatsEmptyAndPanicAsFailures(t *testing.T) {
	p := &scriptedProvider{steps: []step{{text: "   "}, {panic: true}}}
	c := NewClient(p, testConfig(), zerolog.Nop())

	_, ok := c.Generate(context.Background(), "prompt")
	assert.False(t, ok)
	assert.Equal(t, 2, p.calls)
	assert.False(t, c.Enabled())
}

func TestClientWaitsBetweenAttempts(t *testing.T) {
	cfg := testConfig()
	cfg.RetryDelay = 30 * time.Millisecond
	p := &MockProvider{Fail: true}
	c := NewClient(p, cfg, zerolog.Nop())

	start := time.Now()
	c.Generate(context.Background(), "prompt")
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestClientAppliesAttemptTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.AttemptTimeout = 10 * time.Millisecond
	c := NewClient(blockingProvider{}, cfg, zerolog.Nop())

	_, ok := c.Generate(context.Background(), "prompt")
	assert.False(t, ok)
	assert.False(t, c.Enabled())
}

type blockingProvider struct{}

func (blockingProvider) Name() string { return "blocking" }

func (blockingProvider) Generate(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestClientCancelledCallerKeepsEnabled(t *testing.T) {
	p := &MockProvider{}
	c := NewClient(p, testConfig(), zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok := c.Generate(ctx, "prompt")
	assert.False(t, ok)
	assert.Equal(t, 0, p.Calls())
	assert.True(t, c.Enabled())

	_, ok = c.Generate(context.Background(), "prompt")
	assert.True(t, ok)
	assert.Equal(t, 1, p.Calls())
}

func TestClientCallerCancelMidAttemptKeepsEnabled(t *testing.T) {
	c := NewClient(blockingProvider{}, testConfig(), zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, ok := c.Generate(ctx, "prompt")
	assert.False(t, ok)
	assert.True(t, c.Enabled())
}
