package models

import "time"

// Progress is the enumerated play status of a favorited game.
type Progress string

const (
	ProgressWant      Progress = "want"
	ProgressPlayed    Progress = "played"
	ProgressCompleted Progress = "completed"
)

// Valid reports whether p is one of the three known progress values.
func (p Progress) Valid() bool {
	switch p {
	case ProgressWant, ProgressPlayed, ProgressCompleted:
		return true
	}
	return false
}

// FavoriteRecord is the backend's record of a user's saved relationship to a
// game. The compound key is (UserID, GameID). The client only ever holds an
// optimistic shadow copy scoped to one screen.
type FavoriteRecord struct {
	UserID   string    `json:"user_id"`
	GameID   string    `json:"game_id"`
	Progress Progress  `json:"progress"`
	Liked    bool      `json:"liked"`
	AddedAt  time.Time `json:"added_at"`

	// Game is the denormalized game payload some backends embed on the
	// favorite row. May be zero-valued; callers fall back to the catalog.
	Game Game `json:"game,omitempty"`
}

// MyGameItem is the merged row shown on the "my games" screen: the catalog
// game, the favorite's progress/liked flags and the user's own review rating.
type MyGameItem struct {
	Game       Game     `json:"game"`
	Progress   Progress `json:"progress"`
	Liked      bool     `json:"liked"`
	UserRating *float64 `json:"user_rating,omitempty"`
}
