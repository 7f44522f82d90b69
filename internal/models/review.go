package models

// ReviewItem is a single fetched review. Rating is nil when the reviewer
// submitted text without a star value.
type ReviewItem struct {
	UserID string   `json:"user_id"`
	GameID string   `json:"game_id"`
	Rating *float64 `json:"rating,omitempty"`
	Text   string   `json:"text,omitempty"`
}

// RatingSummary is the reduction of a review collection.
// Invariant: Average is nil iff Count == 0.
type RatingSummary struct {
	Average *float64 `json:"average,omitempty"`
	Count   int      `json:"count"`
}

// DiscussionItem is one flat entry of a game's discussion feed. ReplyID is
// "" for top-level items, otherwise it names the parent item's ID.
type DiscussionItem struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Text    string `json:"text,omitempty"`
	ReplyID string `json:"reply_id,omitempty"`
}

// UserInfo is the read-only display lookup for a user id. Rebuilt on every
// discussion or review load, never cached across loads.
type UserInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}
