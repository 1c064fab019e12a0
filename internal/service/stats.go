package service

import (
	"math"

	"github.com/feedback_ai/backend/internal/models"
)

// ComputeStats aggregates reviews for the admin view. Ratings outside 1..5
// count toward the total and the average but not the histogram.
func ComputeStats(reviews []models.Review) models.Stats {
	stats := models.Stats{
		Total:        len(reviews),
		RatingCounts: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	if stats.Total == 0 {
		return stats
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
		if _, ok := stats.RatingCounts[r.Rating]; ok {
			stats.RatingCounts[r.Rating]++
		}
	}
	stats.AvgRating = math.Round(float64(sum)/float64(stats.Total)*100) / 100
	return stats
}
