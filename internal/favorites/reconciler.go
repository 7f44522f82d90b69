// Package favorites owns the optimistic bookmark/like/progress flags for
// one (user, game) pair and reconciles them against a backend that has no
// transactional upsert: creates tolerate conflicts, updates fall back to
// creates, and every operation is idempotent from the caller's side.
package favorites

import (
	"context"
	"errors"
	"log/slog"

	"gameshelf/client/internal/api"
	"gameshelf/client/internal/models"
)

// State is the reconciler's position in its lifecycle. It only ever moves
// through Unknown -> NotBookmarked <-> Bookmarked.
type State int

const (
	StateUnknown State = iota
	StateNotBookmarked
	StateBookmarked
)

func (s State) String() string {
	switch s {
	case StateNotBookmarked:
		return "not bookmarked"
	case StateBookmarked:
		return "bookmarked"
	}
	return "unknown"
}

// ErrNotBookmarked is returned when an operation needs an existing bookmark.
var ErrNotBookmarked = errors.New("game is not bookmarked")

// ErrInvalidProgress is returned for a progress value outside want/played/completed.
var ErrInvalidProgress = errors.New("invalid progress value")

// Backend is the slice of the API client the reconciler needs. Narrow on
// purpose so tests can count calls.
type Backend interface {
	UserFavorites(ctx context.Context, userID string) ([]models.FavoriteRecord, error)
	CreateFavorite(ctx context.Context, in api.FavoriteInput) error
	UpdateFavorite(ctx context.Context, userID, gameID string, patch api.FavoritePatch) error
	DeleteFavorite(ctx context.Context, userID, gameID string) error
}

// Reconciler holds the optimistic flags for one (user, game) pair, scoped to
// one detail-view session. It is owned by a single screen; it is not safe
// for concurrent use and is thrown away on navigation.
type Reconciler struct {
	backend Backend
	log     *slog.Logger

	userID string
	gameID string

	state    State
	liked    bool
	progress models.Progress
}

// New creates a Reconciler in StateUnknown. Call Refresh before rendering.
func New(backend Backend, userID, gameID string, log *slog.Logger) *Reconciler {
	if log == nil {
		log = slog.Default()
	}
	return &Reconciler{
		backend: backend,
		log:     log,
		userID:  userID,
		gameID:  gameID,
	}
}

// State returns the current lifecycle state.
func (r *Reconciler) State() State { return r.state }

// Liked returns the optimistic liked flag. Only meaningful once bookmarked.
func (r *Reconciler) Liked() bool { return r.liked }

// Progress returns the optimistic progress value, "" when unknown.
func (r *Reconciler) Progress() models.Progress { return r.progress }

// Refresh resolves StateUnknown by checking the user's favorites list for
// this game. On fetch failure the state is left unchanged and the error
// surfaced.
func (r *Reconciler) Refresh(ctx context.Context) error {
	if r.userID == "" {
		return api.ErrMissingSession
	}
	records, err := r.backend.UserFavorites(ctx, r.userID)
	if err != nil {
		return err
	}

	r.state = StateNotBookmarked
	r.liked = false
	r.progress = ""
	for _, rec := range records {
		if rec.GameID == r.gameID {
			r.state = StateBookmarked
			r.liked = rec.Liked
			r.progress = rec.Progress
			break
		}
	}
	return nil
}

// Bookmark creates the favorite record. A 409 conflict means the record
// already existed and counts as success, leaving the local liked flag
// untouched. Already being bookmarked is a no-op.
func (r *Reconciler) Bookmark(ctx context.Context) error {
	if r.userID == "" {
		return api.ErrMissingSession
	}
	if r.state == StateBookmarked {
		return nil
	}

	err := r.backend.CreateFavorite(ctx, api.NewFavoriteInput(r.userID, r.gameID, models.ProgressWant, r.liked))
	if err != nil && !api.IsConflict(err) {
		return err
	}
	if api.IsConflict(err) {
		r.log.Debug("bookmark already existed", slog.String("game", r.gameID))
	}
	r.state = StateBookmarked
	if r.progress == "" {
		r.progress = models.ProgressWant
	}
	return nil
}

// Unbookmark deletes the favorite record. On success liked resets to false;
// on failure nothing changes.
func (r *Reconciler) Unbookmark(ctx context.Context) error {
	if r.userID == "" {
		return api.ErrMissingSession
	}
	if err := r.backend.DeleteFavorite(ctx, r.userID, r.gameID); err != nil {
		return err
	}
	r.state = StateNotBookmarked
	r.liked = false
	r.progress = ""
	return nil
}

// ToggleLike flips the liked flag on the backend and, on success, locally.
// Only valid while bookmarked.
func (r *Reconciler) ToggleLike(ctx context.Context) error {
	if r.userID == "" {
		return api.ErrMissingSession
	}
	if r.state != StateBookmarked {
		return ErrNotBookmarked
	}

	next := !r.liked
	if err := r.backend.UpdateFavorite(ctx, r.userID, r.gameID, api.FavoritePatch{Liked: &next}); err != nil {
		return err
	}
	r.liked = next
	return nil
}

// SetProgress patches the progress field, falling back to a create when the
// backend has no record yet. A conflict on the fallback create means a
// concurrent create won the race and counts as success. Any genuine failure
// leaves local state unchanged.
func (r *Reconciler) SetProgress(ctx context.Context, progress models.Progress) error {
	if r.userID == "" {
		return api.ErrMissingSession
	}
	if !progress.Valid() {
		return ErrInvalidProgress
	}

	err := r.backend.UpdateFavorite(ctx, r.userID, r.gameID, api.FavoritePatch{Progress: &progress})
	switch {
	case err == nil:
		r.state = StateBookmarked
		r.progress = progress
		return nil
	case api.IsNotFound(err):
		createErr := r.backend.CreateFavorite(ctx, api.NewFavoriteInput(r.userID, r.gameID, progress, false))
		if createErr != nil && !api.IsConflict(createErr) {
			return createErr
		}
		r.state = StateBookmarked
		r.liked = false
		r.progress = progress
		return nil
	default:
		return err
	}
}
