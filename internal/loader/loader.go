// Package loader orchestrates the per-screen fetches. Each load runs its
// independent fetches concurrently, waits for all of them to settle, and
// only then aggregates; a failed fetch contributes an empty default instead
// of blocking its siblings. Starting a load for a target supersedes any load
// still in flight for the same target, so stale responses can never clobber
// fresh ones.
package loader

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"gameshelf/client/internal/api"
	"gameshelf/client/internal/catalog"
	"gameshelf/client/internal/discussion"
	"gameshelf/client/internal/favorites"
	"gameshelf/client/internal/models"
	"gameshelf/client/internal/ratings"
)

// Loader drives screen loads against one API client.
type Loader struct {
	api *api.Client
	log *slog.Logger

	mu       sync.Mutex
	inflight map[string]*flight
}

type flight struct {
	cancel context.CancelFunc
}

// New creates a Loader.
func New(client *api.Client, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{
		api:      client,
		log:      log,
		inflight: make(map[string]*flight),
	}
}

// begin registers a load for target, cancelling any load already in flight
// for it. The returned release must be deferred.
func (l *Loader) begin(parent context.Context, target string) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	f := &flight{cancel: cancel}

	l.mu.Lock()
	if prev, ok := l.inflight[target]; ok {
		prev.cancel()
	}
	l.inflight[target] = f
	l.mu.Unlock()

	return ctx, func() {
		l.mu.Lock()
		if l.inflight[target] == f {
			delete(l.inflight, target)
		}
		l.mu.Unlock()
		cancel()
	}
}

// HomeView is the aggregated home screen: the full catalog grouped by genre.
type HomeView struct {
	Genres []models.Genre
}

// Home fetches games and tag assignments concurrently and joins them into
// genre buckets. The view is always usable; err reports the first failed
// fetch so the screen can show its empty-state message.
func (l *Loader) Home(ctx context.Context) (HomeView, error) {
	ctx, release := l.begin(ctx, "home")
	defer release()

	var (
		games       []models.Game
		assignments []api.TagAssignment
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		games, err = l.api.Games(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		assignments, err = l.api.TagAssignments(ctx)
		return err
	})
	err := g.Wait()
	if ctx.Err() != nil {
		return HomeView{}, ctx.Err()
	}
	if err != nil {
		l.log.Warn("home load degraded", slog.String("error", err.Error()))
	}
	return HomeView{Genres: catalog.BuildGenres(games, assignments)}, err
}

// SearchView is the flat tagged catalog plus the tag vocabulary for
// suggestions.
type SearchView struct {
	Games []models.Game
	Tags  []string
}

// Search fetches games and tag assignments concurrently and returns the
// catalog with tags attached, in catalog order, ready for search.Filter.
func (l *Loader) Search(ctx context.Context) (SearchView, error) {
	ctx, release := l.begin(ctx, "search")
	defer release()

	var (
		games       []models.Game
		assignments []api.TagAssignment
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		games, err = l.api.Games(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		assignments, err = l.api.TagAssignments(ctx)
		return err
	})
	err := g.Wait()
	if ctx.Err() != nil {
		return SearchView{}, ctx.Err()
	}
	return SearchView{
		Games: catalog.AttachTags(games, assignments),
		Tags:  catalog.TagVocabulary(assignments),
	}, err
}

// DetailView is the per-game detail screen: rating summary, discussion
// threads and, for a signed-in user, the favorite reconciler primed with the
// backend's current state.
type DetailView struct {
	Summary  models.RatingSummary
	Threads  []discussion.ThreadNode
	Favorite *favorites.Reconciler
}

// Detail fetches reviews, discussions, the user lookup table and (when a
// user id is present) the favorite existence check, all concurrently.
// The reconciler stays in StateUnknown when its check failed.
func (l *Loader) Detail(ctx context.Context, gameID, userID string) (DetailView, error) {
	ctx, release := l.begin(ctx, "detail:"+gameID)
	defer release()

	var (
		reviews []models.ReviewItem
		items   []models.DiscussionItem
		users   map[string]models.UserInfo
		rec     *favorites.Reconciler
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		reviews, err = l.api.GameReviews(ctx, gameID)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = l.api.GameDiscussions(ctx, gameID)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = l.api.Users(ctx)
		return err
	})
	if userID != "" {
		rec = favorites.New(l.api, userID, gameID, l.log)
		g.Go(func() error {
			return rec.Refresh(ctx)
		})
	}
	err := g.Wait()
	if ctx.Err() != nil {
		return DetailView{}, ctx.Err()
	}
	return DetailView{
		Summary:  ratings.Summarize(reviews),
		Threads:  discussion.BuildThreads(items, users),
		Favorite: rec,
	}, err
}

// MyGamesView lists the user's favorited games merged with their catalog
// entries and own review ratings.
type MyGamesView struct {
	Items []models.MyGameItem
}

// MyGames fetches the catalog, the user's favorites and the full review list
// concurrently and merges them. Game fields missing on the favorite payload
// fall back to the catalog copy.
func (l *Loader) MyGames(ctx context.Context, userID string) (MyGamesView, error) {
	if userID == "" {
		return MyGamesView{}, api.ErrMissingSession
	}
	ctx, release := l.begin(ctx, "mygames:"+userID)
	defer release()

	var (
		games   []models.Game
		records []models.FavoriteRecord
		reviews []models.ReviewItem
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		games, err = l.api.Games(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = l.api.UserFavorites(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = l.api.AllReviews(ctx)
		return err
	})
	err := g.Wait()
	if ctx.Err() != nil {
		return MyGamesView{}, ctx.Err()
	}

	byID := catalog.GamesByID(games)
	userRatings := ratings.UserRatings(reviews, userID)

	items := make([]models.MyGameItem, 0, len(records))
	for _, rec := range records {
		items = append(items, models.MyGameItem{
			Game:       mergeGame(rec.Game, byID[rec.GameID]),
			Progress:   rec.Progress,
			Liked:      rec.Liked,
			UserRating: userRatings[rec.GameID],
		})
	}
	return MyGamesView{Items: items}, err
}

// mergeGame fills gaps in the favorite's game payload from the catalog copy.
// The ingestion layer defaults a missing title to "Untitled", so that value
// also counts as a gap when the catalog knows better.
func mergeGame(payload, base models.Game) models.Game {
	out := payload
	if (out.Title == "" || out.Title == "Untitled") && base.Title != "" {
		out.Title = base.Title
	}
	if out.ImageURL == "" {
		out.ImageURL = base.ImageURL
	}
	if out.Description == "" {
		out.Description = base.Description
	}
	if out.Developer == "" {
		out.Developer = base.Developer
	}
	if out.Publisher == "" {
		out.Publisher = base.Publisher
	}
	if len(out.Tags) == 0 {
		out.Tags = base.Tags
	}
	if out.Rating == nil {
		out.Rating = base.Rating
	}
	return out
}
