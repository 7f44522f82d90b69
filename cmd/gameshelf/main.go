// Command gameshelf is a terminal front end for the catalog sync core:
// it lists and searches the catalog, shows game details with reviews and
// discussion threads, and runs the bookmark/like/progress/review mutations
// for the signed-in user.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gameshelf/client/internal/api"
	"gameshelf/client/internal/config"
	"gameshelf/client/internal/favorites"
	"gameshelf/client/internal/loader"
	"gameshelf/client/internal/models"
	"gameshelf/client/internal/ratings"
	"gameshelf/client/internal/search"
	"gameshelf/client/internal/session"
)

const usage = `Usage: gameshelf <command> [flags]

Commands:
  catalog [query]                 list the catalog grouped by genre
  search [flags]                  filter the catalog (-name, -tag, -developer, -min-rating)
  game <gameID>                   show a game's reviews and discussion threads
  mygames                         list the signed-in user's saved games
  bookmark <gameID>               save a game
  unbookmark <gameID>             remove a saved game
  like <gameID>                   toggle the like flag on a saved game
  progress <gameID> <value>       set play progress (want|played|completed)
  review <gameID> [flags]         post a review (-rating, -text)
  discuss <gameID> [flags]        post a discussion entry (-text, -reply-to)
  login -name N -password P       sign in
  register -name N -password P    create an account
  logout                          sign out
`

type app struct {
	client *api.Client
	loader *loader.Loader
	store  *session.Store
	log    *slog.Logger
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	config.LoadConfig()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	client := api.New(
		config.AppConfig.APIBaseURL,
		time.Duration(config.AppConfig.HTTPTimeoutSeconds)*time.Second,
		logger,
	)
	a := &app{
		client: client,
		loader: loader.New(client, logger),
		store:  session.NewStore(config.AppConfig.SessionFile),
		log:    logger,
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "catalog":
		return a.catalog(ctx, args)
	case "search":
		return a.search(ctx, args)
	case "game":
		return a.game(ctx, args)
	case "mygames":
		return a.myGames(ctx)
	case "bookmark":
		return a.withReconciler(ctx, args, func(ctx context.Context, r *favorites.Reconciler) error {
			return r.Bookmark(ctx)
		})
	case "unbookmark":
		return a.withReconciler(ctx, args, func(ctx context.Context, r *favorites.Reconciler) error {
			return r.Unbookmark(ctx)
		})
	case "like":
		return a.withReconciler(ctx, args, func(ctx context.Context, r *favorites.Reconciler) error {
			return r.ToggleLike(ctx)
		})
	case "progress":
		return a.progress(ctx, args)
	case "review":
		return a.review(ctx, args)
	case "discuss":
		return a.discuss(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "logout":
		return a.store.Clear()
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) catalog(ctx context.Context, args []string) error {
	view, err := a.loader.Home(ctx)
	if err != nil && len(view.Genres) == 0 {
		fmt.Println("Nothing to show.")
		return err
	}

	genres := view.Genres
	if len(args) > 0 {
		genres = search.FilterGenres(genres, strings.Join(args, " "))
	}
	if len(genres) == 0 {
		fmt.Println("Nothing to show.")
		return err
	}
	for _, genre := range genres {
		fmt.Printf("%s (%d)\n", genre.Name, len(genre.Games))
		for _, g := range genre.Games {
			fmt.Printf("  %s\n", gameLine(g))
		}
	}
	return err
}

func (a *app) search(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	name := fs.String("name", "", "title substring")
	tag := fs.String("tag", "", "tag substring")
	developer := fs.String("developer", "", "developer substring")
	minRating := fs.Float64("min-rating", 0, "minimum rating")
	if err := fs.Parse(args); err != nil {
		return err
	}

	view, err := a.loader.Search(ctx)
	results := search.Filter(view.Games, search.Query{
		Name:      *name,
		Tag:       *tag,
		Developer: *developer,
		MinRating: *minRating,
	})
	if len(results) == 0 {
		fmt.Println("No results.")
		return err
	}
	for _, g := range results {
		fmt.Println(gameLine(g))
	}
	return err
}

func (a *app) game(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: gameshelf game <gameID>")
	}
	gameID := args[0]

	view, err := a.loader.Detail(ctx, gameID, a.store.UserID())
	if err != nil {
		fmt.Fprintln(os.Stderr, "notice: some sections failed to load")
	}

	if view.Summary.Average != nil {
		fmt.Printf("Rating: %s %.1f (%d reviews)\n", starBar(*view.Summary.Average), *view.Summary.Average, view.Summary.Count)
	} else {
		fmt.Println("Rating: no ratings yet")
	}
	if view.Favorite != nil {
		fmt.Printf("Saved: %s", view.Favorite.State())
		if view.Favorite.State() == favorites.StateBookmarked {
			fmt.Printf(", liked=%v, progress=%s", view.Favorite.Liked(), view.Favorite.Progress())
		}
		fmt.Println()
	}

	fmt.Println("\nDiscussion:")
	if len(view.Threads) == 0 {
		fmt.Println("  (empty)")
	}
	for _, node := range view.Threads {
		indent := strings.Repeat("  ", node.Depth+1)
		fmt.Printf("%s[%s]", indent, node.Item.ID)
		if node.HasParent {
			fmt.Printf(" (replying to %s)", node.ParentAuthor)
		}
		fmt.Printf(" %s", node.Item.Text)
		if node.ReplyCount > 0 {
			fmt.Printf("  (%d replies)", node.ReplyCount)
		}
		fmt.Println()
	}
	return err
}

func (a *app) myGames(ctx context.Context) error {
	view, err := a.loader.MyGames(ctx, a.store.UserID())
	if err != nil && len(view.Items) == 0 {
		return err
	}
	if len(view.Items) == 0 {
		fmt.Println("No saved games yet.")
		return err
	}
	for _, item := range view.Items {
		line := fmt.Sprintf("%s [%s]", gameLine(item.Game), item.Progress)
		if item.Liked {
			line += " ♥"
		}
		if item.UserRating != nil {
			line += fmt.Sprintf("  (your rating: %.1f)", *item.UserRating)
		}
		fmt.Println(line)
	}
	return err
}

// withReconciler refreshes the favorite state for the target game and then
// applies one transition.
func (a *app) withReconciler(ctx context.Context, args []string, op func(context.Context, *favorites.Reconciler) error) error {
	if len(args) < 1 {
		return fmt.Errorf("a game id is required")
	}
	r, err := a.reconciler(ctx, args[0])
	if err != nil {
		return err
	}
	if err := op(ctx, r); err != nil {
		return err
	}
	fmt.Printf("%s: %s", args[0], r.State())
	if r.State() == favorites.StateBookmarked {
		fmt.Printf(", liked=%v, progress=%s", r.Liked(), r.Progress())
	}
	fmt.Println()
	return nil
}

func (a *app) progress(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: gameshelf progress <gameID> <want|played|completed>")
	}
	return a.withReconciler(ctx, args[:1], func(ctx context.Context, r *favorites.Reconciler) error {
		return r.SetProgress(ctx, models.Progress(args[1]))
	})
}

func (a *app) reconciler(ctx context.Context, gameID string) (*favorites.Reconciler, error) {
	userID := a.store.UserID()
	if userID == "" {
		return nil, api.ErrMissingSession
	}
	r := favorites.New(a.client, userID, gameID, a.log)
	if err := r.Refresh(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (a *app) review(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: gameshelf review <gameID> [-rating R] [-text T]")
	}
	fs := flag.NewFlagSet("review", flag.ContinueOnError)
	rating := fs.Float64("rating", 0, "star rating, 0.5-5.0 (omit for text-only)")
	text := fs.String("text", "", "review text")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	in := api.ReviewInput{
		GameID: args[0],
		UserID: a.store.UserID(),
		Review: *text,
	}
	if *rating > 0 {
		in.Rating = rating
	}
	if err := a.client.CreateReview(ctx, in); err != nil {
		return err
	}
	fmt.Println("Review submitted.")
	return nil
}

func (a *app) discuss(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: gameshelf discuss <gameID> -text T [-reply-to ID]")
	}
	fs := flag.NewFlagSet("discuss", flag.ContinueOnError)
	text := fs.String("text", "", "discussion text")
	replyTo := fs.String("reply-to", "", "discussion id to reply to")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	err := a.client.CreateDiscussion(ctx, api.DiscussionInput{
		UserID:  a.store.UserID(),
		GameID:  args[0],
		Text:    *text,
		ReplyID: *replyTo,
	})
	if err != nil {
		return err
	}
	fmt.Println("Posted.")
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	name := fs.String("name", "", "user name")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.client.Login(ctx, *name, *password)
	if err != nil {
		return err
	}
	if err := a.store.Save(user.ID, user.Name); err != nil {
		return err
	}
	fmt.Printf("Signed in as %s.\n", user.Name)
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "user name")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.client.Register(ctx, *name, *password); err != nil {
		return err
	}
	fmt.Println("Account created, you can log in now.")
	return nil
}

func gameLine(g models.Game) string {
	line := g.Title + " (" + g.ID + ")"
	if g.Developer != "" {
		line += " by " + g.Developer
	}
	if g.Rating != nil {
		line += "  " + starBar(*g.Rating)
	}
	if len(g.Tags) > 0 {
		line += "  [" + strings.Join(g.Tags, ", ") + "]"
	}
	return line
}

func starBar(rating float64) string {
	filled, half := ratings.Stars(rating)
	bar := strings.Repeat("★", filled)
	if half {
		bar += "½"
	}
	return bar
}
