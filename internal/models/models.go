package models

// Review is one persisted customer submission together with the generated reply.
type Review struct {
	ID         string   `json:"id"`
	Timestamp  string   `json:"timestamp"`
	Rating     int      `json:"rating"`
	Review     string   `json:"review"`
	AIResponse string   `json:"ai_response"`
	AISummary  string   `json:"ai_summary"`
	AIActions  []string `json:"ai_actions"`
}

// AIResponse is the generated triple for a single submission.
type AIResponse struct {
	CustomerResponse string   `json:"customer_response"`
	Summary          string   `json:"summary"`
	Suggestions      []string `json:"suggestions"`
}

type Stats struct {
	Total        int         `json:"total"`
	AvgRating    float64     `json:"avg_rating"`
	RatingCounts map[int]int `json:"rating_counts"`
	AIEnabled    bool        `json:"ai_enabled"`
}
