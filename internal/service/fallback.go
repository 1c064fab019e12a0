package service

import "github.com/feedback_ai/backend/internal/models"

const neutralRating = 3

var fallbackResponses = map[int]models.AIResponse{
	1: {
		CustomerResponse: "We sincerely apologize for your disappointing experience. We take your feedback seriously and will address these issues immediately.",
		Summary:          "Critical 1-star review requiring urgent attention.",
		Suggestions:      []string{"Immediate customer follow-up", "Staff retraining", "Quality control review"},
	},
	2: {
		CustomerResponse: "Thank you for your honest feedback. We're sorry we fell short of your expectations and will work to improve.",
		Summary:          "Dissatisfied customer with specific complaints.",
		Suggestions:      []string{"Review service protocols", "Check product quality", "Consider compensation"},
	},
	3: {
		CustomerResponse: "Thank you for your feedback. We appreciate you taking the time to share your experience with us.",
		Summary:          "Average experience with room for improvement.",
		Suggestions:      []string{"Identify improvement areas", "Monitor similar feedback", "Standard check"},
	},
	4: {
		CustomerResponse: "Thank you for your positive review! We're delighted you enjoyed your experience and hope to see you again soon!",
		Summary:          "Positive review with high satisfaction.",
		Suggestions:      []string{"Share with team for motivation", "Reinforce positive practices", "Thank the staff involved"},
	},
	5: {
		CustomerResponse: "Wow! Thank you for the amazing review! We're thrilled you loved everything and can't wait to welcome you back!",
		Summary:          "Excellent review with high praise.",
		Suggestions:      []string{"Feature as testimonial", "Reward exceptional staff", "Share on social media"},
	},
}

// FallbackFor returns the canned reply for rating; unknown ratings get the neutral entry.
func FallbackFor(rating int) models.AIResponse {
	r, ok := fallbackResponses[rating]
	if !ok {
		r = fallbackResponses[neutralRating]
	}
	r.Suggestions = append([]string(nil), r.Suggestions...)
	return r
}
