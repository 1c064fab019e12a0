package ai

import (
	"errors"
	"strings"

	"github.com/feedback_ai/backend/internal/models"
)

// Line labels the provider is asked to emit. Matching is exact and case-sensitive.
const (
	LabelCustomerResponse = "RESPONSE TO CUSTOMER:"
	LabelSummary          = "SUMMARY:"
	LabelSuggestions      = "SUGGESTIONS:"
)

// ErrIncomplete means the output did not carry all three labeled fields.
var ErrIncomplete = errors.New("ai response incomplete")

// ParseResponse extracts the reply triple from raw provider output.
// Suggestions are split on commas, bullets and hyphens, so a hyphenated
// suggestion comes back as several items.
func ParseResponse(raw string) (models.AIResponse, error) {
	var out models.AIResponse

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, LabelCustomerResponse):
			out.CustomerResponse = strings.TrimSpace(strings.TrimPrefix(line, LabelCustomerResponse))
		case strings.HasPrefix(line, LabelSummary):
			out.Summary = strings.TrimSpace(strings.TrimPrefix(line, LabelSummary))
		case strings.HasPrefix(line, LabelSuggestions):
			out.Suggestions = splitSuggestions(strings.TrimPrefix(line, LabelSuggestions))
		}
	}

	if out.CustomerResponse == "" || out.Summary == "" || len(out.Suggestions) == 0 {
		return models.AIResponse{}, ErrIncomplete
	}
	return out, nil
}

func splitSuggestions(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '•' || r == '-'
	})
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
