package devserver

import "time"

// Game is a catalog row as served to clients. Field names follow the wire
// contract (snake_case, game_id as the key).
type Game struct {
	ID          string   `gorm:"primaryKey;size:64" json:"game_id"`
	Title       string   `gorm:"size:255;not null" json:"title"`
	Image       string   `gorm:"size:512" json:"image,omitempty"`
	Description string   `gorm:"type:text" json:"description,omitempty"`
	Developer   string   `gorm:"size:255" json:"developer,omitempty"`
	Publisher   string   `gorm:"size:255" json:"publisher,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}

// TagAssignment links a game to one tag string. A game may carry any number
// of assignments.
type TagAssignment struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	GameID string `gorm:"size:64;index;not null" json:"game_id"`
	Tag    string `gorm:"size:100;not null" json:"tag"`
}

// Review is a user's review of a game. Rating is optional; text-only
// reviews are allowed.
type Review struct {
	ID        string    `gorm:"primaryKey;size:32" json:"review_id"`
	GameID    string    `gorm:"size:64;index;not null" json:"game_id"`
	UserID    string    `gorm:"size:64;index;not null" json:"user_id"`
	Rating    *float64  `json:"rating,omitempty"`
	Review    string    `gorm:"type:text" json:"review,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Discussion is one entry of a game's discussion feed. ReplyID references
// another discussion's ID, or "" for top-level entries.
type Discussion struct {
	ID             string    `gorm:"primaryKey;size:32" json:"discussion_id"`
	GameID         string    `gorm:"size:64;index;not null" json:"game_id"`
	UserID         string    `gorm:"size:64;not null" json:"user_id"`
	DiscussionText string    `gorm:"type:text" json:"discussion_text,omitempty"`
	ReplyID        string    `gorm:"size:32;index" json:"reply_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Favorite represents a user's saved relationship to a game.
// The primary key is a composite of (UserID, GameID) to ensure uniqueness.
type Favorite struct {
	UserID   string    `gorm:"primaryKey;size:64" json:"user_id"`
	GameID   string    `gorm:"primaryKey;size:64" json:"game_id"`
	Progress string    `gorm:"size:20;not null;default:'want'" json:"progress"`
	Liked    bool      `json:"liked"`
	AddedAt  time.Time `json:"added_at"`
}

// User represents an account on the dev backend.
type User struct {
	ID           string `gorm:"primaryKey;size:32" json:"user_id"`
	Name         string `gorm:"size:255;unique;not null" json:"name"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Picture      string `gorm:"size:512" json:"picture,omitempty"`
}
