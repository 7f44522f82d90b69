// Package catalog joins raw game records with tag assignments into the
// genre groupings the home screen renders and the flat tagged list the
// search screen filters.
package catalog

import (
	"sort"
	"strings"

	"gameshelf/client/internal/api"
	"gameshelf/client/internal/models"
)

// BuildGenres groups games into one Genre per tag, in case-insensitive name
// order. A game with several tags appears under each of them, carrying its
// full accumulated tag list; games no assignment mentions land once in the
// "Other" bucket. Assignments referencing unknown games are dropped.
// Within a genre, games keep the order their assignments arrived in.
func BuildGenres(games []models.Game, assignments []api.TagAssignment) []models.Genre {
	byID := make(map[string]models.Game, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}

	// tags per game and game ids per tag, both in first-encounter order
	gameTags := make(map[string][]string)
	tagGames := make(map[string][]string)
	var tagOrder []string
	tagged := make(map[string]bool)

	for _, a := range assignments {
		if _, known := byID[a.GameID]; !known {
			continue
		}
		tag := a.Tag
		if strings.TrimSpace(tag) == "" {
			tag = models.OtherGenre
		}
		gameTags[a.GameID] = append(gameTags[a.GameID], tag)
		if _, seen := tagGames[tag]; !seen {
			tagOrder = append(tagOrder, tag)
		}
		tagGames[tag] = append(tagGames[tag], a.GameID)
		tagged[a.GameID] = true
	}

	var genres []models.Genre
	for _, tag := range tagOrder {
		bucket := make([]models.Game, 0, len(tagGames[tag]))
		for _, id := range tagGames[tag] {
			bucket = append(bucket, byID[id].WithTags(gameTags[id]))
		}
		genres = append(genres, models.Genre{Name: tag, Games: bucket})
	}

	// untagged games collect into "Other", keeping catalog order
	var leftovers []models.Game
	for _, g := range games {
		if !tagged[g.ID] {
			leftovers = append(leftovers, g.WithTags(gameTags[g.ID]))
		}
	}
	if len(leftovers) > 0 {
		placed := false
		for i := range genres {
			if genres[i].Name == models.OtherGenre {
				genres[i].Games = append(genres[i].Games, leftovers...)
				placed = true
				break
			}
		}
		if !placed {
			genres = append(genres, models.Genre{Name: models.OtherGenre, Games: leftovers})
		}
	}

	sort.SliceStable(genres, func(i, j int) bool {
		return strings.ToLower(genres[i].Name) < strings.ToLower(genres[j].Name)
	})
	return genres
}

// AttachTags returns the games with their accumulated tags attached, in
// catalog order. Used by the search screen, which filters a flat list
// instead of genre buckets.
func AttachTags(games []models.Game, assignments []api.TagAssignment) []models.Game {
	tagsByGame := make(map[string][]string)
	for _, a := range assignments {
		if strings.TrimSpace(a.Tag) == "" {
			continue
		}
		tagsByGame[a.GameID] = append(tagsByGame[a.GameID], a.Tag)
	}

	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		if tags, ok := tagsByGame[g.ID]; ok {
			out = append(out, g.WithTags(tags))
		} else {
			out = append(out, g)
		}
	}
	return out
}

// GamesByID indexes games by id for favorite/review merging.
func GamesByID(games []models.Game) map[string]models.Game {
	byID := make(map[string]models.Game, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}
	return byID
}

// TagVocabulary returns the distinct tag names in first-encounter order,
// feeding the search screen's tag suggestions.
func TagVocabulary(assignments []api.TagAssignment) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, a := range assignments {
		tag := strings.TrimSpace(a.Tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
