package ai

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync/atomic"
)

var errMockFailure = errors.New("mock provider failure")

// MockProvider produces well-formed replies without any network access.
// Reply, when set, is returned verbatim; Fail makes every call error out.
type MockProvider struct {
	ModelVersion string
	Reply        string
	Fail         bool

	calls atomic.Int64
}

func (m *MockProvider) Name() string {
	if m.ModelVersion == "" {
		return "mock"
	}
	return "mock:" + m.ModelVersion
}

func (m *MockProvider) Calls() int {
	return int(m.calls.Load())
}

func (m *MockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	m.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.Fail {
		return "", errMockFailure
	}
	if m.Reply != "" {
		return m.Reply, nil
	}

	f := fnv.New64a()
	_, _ = f.Write([]byte(prompt))
	h := f.Sum64()
	openers := []string{
		"Thank you for sharing your experience with us.",
		"We appreciate you taking the time to write to us.",
		"Thanks a lot for your feedback.",
	}
	summaries := []string{
		"Guest shared detailed feedback about the visit.",
		"Customer commented on food and service.",
		"Review highlights the overall dining experience.",
	}
	actions := []string{
		"Share feedback with the kitchen team",
		"Review service timings",
		"Follow up with the guest",
		"Check menu consistency",
	}

	return fmt.Sprintf("%s %s\n%s %s\n%s %s, %s\n",
		LabelCustomerResponse, openers[h%uint64(len(openers))],
		LabelSummary, summaries[(h/7)%uint64(len(summaries))],
		LabelSuggestions, actions[(h/13)%uint64(len(actions))], actions[(h/13+1)%uint64(len(actions))],
	), nil
}
