package models

// Game represents a catalog entry as the client sees it.
// Optional text fields use "" for absent; Rating uses nil because 0.0 is a
// legal rating value.
type Game struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	ImageURL    string   `json:"image_url,omitempty"`
	Description string   `json:"description,omitempty"`
	Developer   string   `json:"developer,omitempty"`
	Publisher   string   `json:"publisher,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}

// WithTags returns a copy of the game with the given tags attached.
// The receiver is never mutated; aggregation works copy-on-read.
func (g Game) WithTags(tags []string) Game {
	out := g
	out.Tags = append([]string(nil), tags...)
	return out
}

// OtherGenre is the reserved bucket for games that carry no tag at all.
const OtherGenre = "Other"

// Genre is a named grouping of games sharing a tag. Built by the catalog
// aggregator, never persisted.
type Genre struct {
	Name  string `json:"name"`
	Games []Game `json:"games"`
}
