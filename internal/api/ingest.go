package api

import (
	"context"
	"net/url"
	"strings"

	"gameshelf/client/internal/models"
)

// TagAssignment links one game to one tag string. The catalog aggregator
// turns a list of these into genre buckets.
type TagAssignment struct {
	GameID string
	Tag    string
}

// ResolveImageURL turns a backend image path into an absolute URL. Absolute
// URLs pass through; relative paths are joined to the base URL; blanks stay
// absent.
func ResolveImageURL(baseURL, path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(trimmed), "http") {
		return trimmed
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return baseURL + trimmed
}

// GameFromRecord builds a Game from a raw record. Records without a
// resolvable id are dropped (ok == false). A missing title defaults to
// "Untitled".
func GameFromRecord(rec Record, baseURL string) (models.Game, bool) {
	id := rec.Str("game_id", "id")
	if id == "" {
		return models.Game{}, false
	}
	title := rec.Str("title", "name")
	if title == "" {
		title = "Untitled"
	}
	return models.Game{
		ID:          id,
		Title:       title,
		ImageURL:    ResolveImageURL(baseURL, rec.Str("image")),
		Description: rec.Str("description"),
		Developer:   rec.Str("developer"),
		Publisher:   rec.Str("publisher"),
		Tags:        rec.Strings("tags"),
		Rating:      rec.Float("rating"),
	}, true
}

// TagAssignmentFromRecord builds a TagAssignment; assignments without a
// resolvable game id are dropped.
func TagAssignmentFromRecord(rec Record) (TagAssignment, bool) {
	gameID := rec.Str("game_id", "id")
	if gameID == "" {
		return TagAssignment{}, false
	}
	return TagAssignment{GameID: gameID, Tag: rec.Str("tag")}, true
}

// ReviewFromRecord builds a ReviewItem. Reviews are kept even when author or
// rating is missing; the aggregators filter for what they need.
func ReviewFromRecord(rec Record) models.ReviewItem {
	return models.ReviewItem{
		UserID: rec.Str("user_id", "userId"),
		GameID: rec.Str("game_id", "gameId"),
		Rating: rec.Float("rating"),
		Text:   rec.Str("review", "text"),
	}
}

// DiscussionFromRecord builds a DiscussionItem; items without a resolvable
// id are dropped.
func DiscussionFromRecord(rec Record) (models.DiscussionItem, bool) {
	id := rec.Str("discussion_id", "id")
	if id == "" {
		return models.DiscussionItem{}, false
	}
	return models.DiscussionItem{
		ID:      id,
		UserID:  rec.Str("user_id", "userId"),
		Text:    rec.Str("discussion_text", "text"),
		ReplyID: rec.Str("reply_id", "replyId"),
	}, true
}

// UserFromRecord builds a UserInfo; users without a resolvable id are
// dropped.
func UserFromRecord(rec Record, baseURL string) (models.UserInfo, bool) {
	id := rec.Str("user_id", "id")
	if id == "" {
		return models.UserInfo{}, false
	}
	return models.UserInfo{
		ID:      id,
		Name:    rec.Str("name", "username"),
		Picture: ResolveImageURL(baseURL, rec.Str("picture", "avatar")),
	}, true
}

// FavoriteFromRecord builds a FavoriteRecord. The game payload may be nested
// under "game" or flattened onto the favorite row; either way only the
// fields present on the payload are filled, the loader merges in the catalog
// copy for the rest. Progress defaults to "want".
func FavoriteFromRecord(rec Record, baseURL string) (models.FavoriteRecord, bool) {
	gameRec, ok := rec.Child("game")
	if !ok {
		gameRec = rec
	}
	game, ok := GameFromRecord(gameRec, baseURL)
	if !ok {
		return models.FavoriteRecord{}, false
	}

	progress := models.Progress(rec.Str("progress"))
	if !progress.Valid() {
		progress = models.ProgressWant
	}
	return models.FavoriteRecord{
		UserID:   rec.Str("user_id", "userId"),
		GameID:   game.ID,
		Progress: progress,
		Liked:    rec.Bool("liked"),
		AddedAt:  rec.Time("added_at", "addedAt"),
		Game:     game,
	}, true
}

// Games fetches and normalizes the full game list.
func (c *Client) Games(ctx context.Context) ([]models.Game, error) {
	records, err := c.FetchList(ctx, "/games")
	if err != nil {
		return nil, err
	}
	var games []models.Game
	for _, rec := range records {
		if g, ok := GameFromRecord(rec, c.baseURL); ok {
			games = append(games, g)
		}
	}
	return games, nil
}

// TagAssignments fetches and normalizes the tag-assignment list.
func (c *Client) TagAssignments(ctx context.Context) ([]TagAssignment, error) {
	records, err := c.FetchList(ctx, "/tags")
	if err != nil {
		return nil, err
	}
	var assignments []TagAssignment
	for _, rec := range records {
		if a, ok := TagAssignmentFromRecord(rec); ok {
			assignments = append(assignments, a)
		}
	}
	return assignments, nil
}

// AllReviews fetches every review on the backend.
func (c *Client) AllReviews(ctx context.Context) ([]models.ReviewItem, error) {
	return c.reviews(ctx, "/reviews")
}

// GameReviews fetches the reviews for one game.
func (c *Client) GameReviews(ctx context.Context, gameID string) ([]models.ReviewItem, error) {
	return c.reviews(ctx, "/reviews/game/"+url.PathEscape(gameID))
}

func (c *Client) reviews(ctx context.Context, path string) ([]models.ReviewItem, error) {
	records, err := c.FetchList(ctx, path)
	if err != nil {
		return nil, err
	}
	reviews := make([]models.ReviewItem, 0, len(records))
	for _, rec := range records {
		reviews = append(reviews, ReviewFromRecord(rec))
	}
	return reviews, nil
}

// GameDiscussions fetches the flat discussion feed for one game.
func (c *Client) GameDiscussions(ctx context.Context, gameID string) ([]models.DiscussionItem, error) {
	records, err := c.FetchList(ctx, "/discussions/game/"+url.PathEscape(gameID))
	if err != nil {
		return nil, err
	}
	var items []models.DiscussionItem
	for _, rec := range records {
		if item, ok := DiscussionFromRecord(rec); ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// Users fetches the user lookup table keyed by user id.
func (c *Client) Users(ctx context.Context) (map[string]models.UserInfo, error) {
	records, err := c.FetchList(ctx, "/users")
	if err != nil {
		return nil, err
	}
	users := make(map[string]models.UserInfo, len(records))
	for _, rec := range records {
		if u, ok := UserFromRecord(rec, c.baseURL); ok {
			users[u.ID] = u
		}
	}
	return users, nil
}

// UserFavorites fetches the favorite records for one user.
func (c *Client) UserFavorites(ctx context.Context, userID string) ([]models.FavoriteRecord, error) {
	records, err := c.FetchList(ctx, "/favorites/user/"+url.PathEscape(userID))
	if err != nil {
		return nil, err
	}
	var favorites []models.FavoriteRecord
	for _, rec := range records {
		if f, ok := FavoriteFromRecord(rec, c.baseURL); ok {
			favorites = append(favorites, f)
		}
	}
	return favorites, nil
}
