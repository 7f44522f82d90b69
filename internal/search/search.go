// Package search filters the already-fetched catalog. Everything here is
// pure and synchronous; no predicate ever touches the network.
package search

import (
	"strings"

	"gameshelf/client/internal/models"
)

// Query holds the four independent, all-optional search predicates. Blank
// text fields and a zero MinRating always pass.
type Query struct {
	Name      string
	Tag       string
	Developer string
	MinRating float64
}

// Filter returns the games matching every active predicate, in input order.
// Text matching is case-insensitive substring containment; the tag predicate
// matches against any of the game's tags; a game without a rating counts as
// rated 0.
func Filter(games []models.Game, q Query) []models.Game {
	name := strings.TrimSpace(q.Name)
	tag := strings.TrimSpace(q.Tag)
	dev := strings.TrimSpace(q.Developer)

	var out []models.Game
	for _, g := range games {
		if name != "" && !containsFold(g.Title, name) {
			continue
		}
		if tag != "" && !anyTagMatches(g.Tags, tag) {
			continue
		}
		if dev != "" && !containsFold(g.Developer, dev) {
			continue
		}
		if q.MinRating > 0 {
			rating := 0.0
			if g.Rating != nil {
				rating = *g.Rating
			}
			if rating < q.MinRating {
				continue
			}
		}
		out = append(out, g)
	}
	return out
}

// FilterGenres narrows genre buckets for the home screen's search box: a
// game stays when its title or its genre's name matches, and genres with no
// surviving game disappear.
func FilterGenres(genres []models.Genre, query string) []models.Genre {
	query = strings.TrimSpace(query)
	if query == "" {
		return genres
	}

	var out []models.Genre
	for _, genre := range genres {
		genreMatches := containsFold(genre.Name, query)
		var kept []models.Game
		for _, g := range genre.Games {
			if genreMatches || containsFold(g.Title, query) {
				kept = append(kept, g)
			}
		}
		if len(kept) > 0 {
			out = append(out, models.Genre{Name: genre.Name, Games: kept})
		}
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func anyTagMatches(tags []string, needle string) bool {
	for _, t := range tags {
		if containsFold(t, needle) {
			return true
		}
	}
	return false
}
