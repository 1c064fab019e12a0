package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponseWellFormed(t *testing.T) {
	res, err := ParseResponse("RESPONSE TO CUSTOMER: A\nSUMMARY: B\nSUGGESTIONS: C, D, E")
	require.NoError(t, err)
	assert.Equal(t, "A", res.CustomerResponse)
	assert.Equal(t, "B", res.Summary)
	assert.Equal(t, []string{"C", "D", "E"}, res.Suggestions)
}

func TestParseResponseTrimsLinesAndIgnoresNoise(t *testing.T) {
	raw := `Here you go:

    RESPONSE TO CUSTOMER:   Thanks for visiting!
    SUMMARY: Happy guest.
    SUGGESTIONS: • Keep the menu • Thank the staff
`
	res, err := ParseResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Thanks for visiting!", res.CustomerResponse)
	assert.Equal(t, "Happy guest.", res.Summary)
	assert.Equal(t, []string{"Keep the menu", "Thank the staff"}, res.Suggestions)
}

func TestParseResponseSplitsOnHyphens(t *testing.T) {
	res, err := ParseResponse("RESPONSE TO CUSTOMER: A\nSUMMARY: B\nSUGGESTIONS: Re-train staff, Audit")
	require.NoError(t, err)
	assert.Equal(t, []string{"Re", "train staff", "Audit"}, res.Suggestions)
}

func TestParseResponseIncomplete(t *testing.T) {
	cases := map[string]string{
		"missing suggestions": "RESPONSE TO CUSTOMER: A\nSUMMARY: B",
		"empty summary":       "RESPONSE TO CUSTOMER: A\nSUMMARY:\nSUGGESTIONS: C",
		"only delimiters":     "RESPONSE TO CUSTOMER: A\nSUMMARY: B\nSUGGESTIONS: , - •",
		"lowercase labels":    "response to customer: A\nsummary: B\nsuggestions: C",
		"markdown labels":     "**RESPONSE TO CUSTOMER:** A\n**SUMMARY:** B\n**SUGGESTIONS:** C",
		"empty":               "",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseResponse(raw)
			assert.ErrorIs(t, err, ErrIncomplete)
		})
	}
}

func TestParseResponseLaterLabelWins(t *testing.T) {
	res, err := ParseResponse("SUMMARY: first\nRESPONSE TO CUSTOMER: A\nSUMMARY: second\nSUGGESTIONS: C")
	require.NoError(t, err)
	assert.Equal(t, "second", res.Summary)
}

func TestBuildPromptEmbedsInputs(t *testing.T) {
	p := BuildPrompt(4, `Loved the "pasta"`)
	assert.Contains(t, p, "4-star review")
	assert.Contains(t, p, `REVIEW: "Loved the "pasta""`)
	assert.Contains(t, p, LabelCustomerResponse)
	assert.Contains(t, p, LabelSummary)
	assert.Contains(t, p, LabelSuggestions)
}

func TestMockProviderOutputParses(t *testing.T) {
	m := &MockProvider{ModelVersion: "v1"}
	out, err := m.Generate(context.Background(), BuildPrompt(2, "Cold soup"))
	require.NoError(t, err)

	res, err := ParseResponse(out)
	require.NoError(t, err)
	assert.NotEmpty(t, res.CustomerResponse)
	assert.NotEmpty(t, res.Summary)
	assert.Len(t, res.Suggestions, 2)
	assert.Equal(t, 1, m.Calls())
	assert.True(t, strings.HasPrefix(m.Name(), "mock"))
}
