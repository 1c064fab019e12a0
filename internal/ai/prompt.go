package ai

import "fmt"

const promptTemplate = `
As a restaurant feedback system, generate responses for this %d-star review:

REVIEW: "%s"

Generate:
1. A polite, professional response to the customer (1-2 sentences)
2. A brief summary for the restaurant manager (1 sentence)
3. 2-3 actionable suggestions for improvement

Format your response as:
` + LabelCustomerResponse + ` [your response here]
` + LabelSummary + ` [your summary here]
` + LabelSuggestions + ` [suggestion 1], [suggestion 2], [suggestion 3]
`

// BuildPrompt embeds rating and review verbatim.
func BuildPrompt(rating int, review string) string {
	return fmt.Sprintf(promptTemplate, rating, review)
}
