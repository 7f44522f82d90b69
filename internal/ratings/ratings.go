// Package ratings reduces raw review collections into the numbers the
// detail and profile screens show.
package ratings

import (
	"math"

	"gameshelf/client/internal/models"
)

// Summarize reduces a review collection to mean and count over the entries
// that carry a numeric rating. Average is nil iff no entry qualified.
func Summarize(reviews []models.ReviewItem) models.RatingSummary {
	var sum float64
	var count int
	for _, r := range reviews {
		if r.Rating == nil || math.IsNaN(*r.Rating) {
			continue
		}
		sum += *r.Rating
		count++
	}
	if count == 0 {
		return models.RatingSummary{}
	}
	avg := sum / float64(count)
	return models.RatingSummary{Average: &avg, Count: count}
}

// UserRatings maps gameID to the rating the given user left on it. When a
// user reviewed the same game more than once the later entry wins, by input
// order; the backend guarantees no timestamp to sort on. A game maps to nil
// when the user's review carried no rating.
func UserRatings(reviews []models.ReviewItem, userID string) map[string]*float64 {
	out := make(map[string]*float64)
	if userID == "" {
		return out
	}
	for _, r := range reviews {
		if r.UserID != userID || r.GameID == "" {
			continue
		}
		out[r.GameID] = r.Rating
	}
	return out
}

// Stars converts a rating into the five-star display form: the number of
// filled stars and whether a half star follows. Pure presentation; the
// aggregation above never rounds.
func Stars(rating float64) (filled int, half bool) {
	filled = int(math.Floor(rating))
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	half = filled < 5 && rating-float64(filled) >= 0.5
	return filled, half
}
