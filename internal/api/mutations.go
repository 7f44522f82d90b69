package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"gameshelf/client/internal/models"
)

// ReviewInput is the POST /reviews body. This endpoint expects camelCase
// keys, unlike the rest of the API.
type ReviewInput struct {
	GameID string   `json:"gameId"`
	UserID string   `json:"userId"`
	Review string   `json:"review"`
	Rating *float64 `json:"rating,omitempty"`
}

// DiscussionInput is the POST /discussions body.
type DiscussionInput struct {
	UserID  string `json:"user_id"`
	GameID  string `json:"game_id"`
	Text    string `json:"discussion_text"`
	ReplyID string `json:"reply_id,omitempty"`
}

// FavoriteInput is the POST /favorites body.
type FavoriteInput struct {
	UserID   string          `json:"user_id"`
	GameID   string          `json:"game_id"`
	Progress models.Progress `json:"progress"`
	Liked    bool            `json:"liked"`
	AddedAt  string          `json:"added_at"`
}

// FavoritePatch is the partial PATCH /favorites/{userId}/{gameId} body.
type FavoritePatch struct {
	Liked    *bool            `json:"liked,omitempty"`
	Progress *models.Progress `json:"progress,omitempty"`
}

// NewFavoriteInput builds a create body stamped with the current UTC time.
func NewFavoriteInput(userID, gameID string, progress models.Progress, liked bool) FavoriteInput {
	return FavoriteInput{
		UserID:   userID,
		GameID:   gameID,
		Progress: progress,
		Liked:    liked,
		AddedAt:  time.Now().UTC().Format(time.RFC3339),
	}
}

// CreateReview posts a new review.
func (c *Client) CreateReview(ctx context.Context, in ReviewInput) error {
	if in.UserID == "" {
		return ErrMissingSession
	}
	return c.send(ctx, http.MethodPost, "/reviews", in)
}

// CreateDiscussion posts a new discussion entry or reply.
func (c *Client) CreateDiscussion(ctx context.Context, in DiscussionInput) error {
	if in.UserID == "" {
		return ErrMissingSession
	}
	return c.send(ctx, http.MethodPost, "/discussions", in)
}

// CreateFavorite posts a new favorite record. A 409 conflict is returned
// as-is; the reconciler decides whether it counts as success.
func (c *Client) CreateFavorite(ctx context.Context, in FavoriteInput) error {
	if in.UserID == "" {
		return ErrMissingSession
	}
	return c.send(ctx, http.MethodPost, "/favorites", in)
}

// UpdateFavorite patches the liked and/or progress fields of an existing
// favorite. A 404 is returned as-is for the reconciler's fallback path.
func (c *Client) UpdateFavorite(ctx context.Context, userID, gameID string, patch FavoritePatch) error {
	if userID == "" {
		return ErrMissingSession
	}
	path := "/favorites/" + url.PathEscape(userID) + "/" + url.PathEscape(gameID)
	return c.send(ctx, http.MethodPatch, path, patch)
}

// DeleteFavorite removes a favorite record.
func (c *Client) DeleteFavorite(ctx context.Context, userID, gameID string) error {
	if userID == "" {
		return ErrMissingSession
	}
	path := "/favorites/" + url.PathEscape(userID) + "/" + url.PathEscape(gameID)
	return c.send(ctx, http.MethodDelete, path, nil)
}

// Login authenticates against the backend and returns the signed-in user.
func (c *Client) Login(ctx context.Context, name, password string) (models.UserInfo, error) {
	body, err := c.sendForBody(ctx, http.MethodPost, "/Users/login", map[string]string{
		"name":     name,
		"password": password,
	})
	if err != nil {
		return models.UserInfo{}, err
	}

	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return models.UserInfo{}, fmt.Errorf("decoding login response: %w", err)
	}
	user, ok := UserFromRecord(rec, c.baseURL)
	if !ok {
		return models.UserInfo{}, fmt.Errorf("login response carried no user id")
	}
	return user, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, name, password string) error {
	return c.send(ctx, http.MethodPost, "/Users/register", map[string]string{
		"name":     name,
		"password": password,
	})
}
