package devserver_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshelf/client/internal/api"
	"gameshelf/client/internal/config"
	"gameshelf/client/internal/devserver"
	"gameshelf/client/internal/favorites"
	"gameshelf/client/internal/loader"
	"gameshelf/client/internal/models"
)

func startBackend(t *testing.T) *api.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	devserver.Connect(filepath.Join(t.TempDir(), "dev.db"))
	devserver.Seed()

	srv := httptest.NewServer(devserver.Router())
	t.Cleanup(srv.Close)
	return api.New(srv.URL, 5*time.Second, nil)
}

// The client and the dev backend share a wire contract; this walks the whole
// read path through it.
func TestClientAgainstBackend(t *testing.T) {
	client := startBackend(t)
	ctx := context.Background()
	l := loader.New(client, nil)

	home, err := l.Home(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, home.Genres)

	names := make([]string, len(home.Genres))
	for i, g := range home.Genres {
		names[i] = g.Name
	}
	assert.Equal(t, []string{"Action", "Metroidvania", "Other", "Platformer", "Roguelike", "Simulation"}, names)

	detail, err := l.Detail(ctx, "hollow-knight", "")
	require.NoError(t, err)
	require.NotNil(t, detail.Summary.Average)
	assert.Equal(t, 5.0, *detail.Summary.Average)
	require.Len(t, detail.Threads, 2)
	assert.Equal(t, 0, detail.Threads[0].Depth)
	assert.Equal(t, 1, detail.Threads[1].Depth)
	assert.Equal(t, "demo", detail.Threads[1].ParentAuthor)
}

func TestReconcilerAgainstBackend(t *testing.T) {
	client := startBackend(t)
	ctx := context.Background()

	user, err := client.Login(ctx, "demo", "demo1234")
	require.NoError(t, err)

	r := favorites.New(client, user.ID, "celeste", nil)
	require.NoError(t, r.Refresh(ctx))
	require.Equal(t, favorites.StateNotBookmarked, r.State())

	require.NoError(t, r.Bookmark(ctx))
	require.NoError(t, r.Bookmark(ctx), "double bookmark is idempotent")
	assert.Equal(t, favorites.StateBookmarked, r.State())

	require.NoError(t, r.ToggleLike(ctx))
	assert.True(t, r.Liked())

	require.NoError(t, r.SetProgress(ctx, models.ProgressCompleted))

	fresh := favorites.New(client, user.ID, "celeste", nil)
	require.NoError(t, fresh.Refresh(ctx))
	assert.Equal(t, favorites.StateBookmarked, fresh.State())
	assert.True(t, fresh.Liked())
	assert.Equal(t, models.ProgressCompleted, fresh.Progress())

	// progress on a game with no record falls back to create
	other := favorites.New(client, user.ID, "hades", nil)
	require.NoError(t, other.Refresh(ctx))
	require.NoError(t, other.SetProgress(ctx, models.ProgressPlayed))
	assert.Equal(t, favorites.StateBookmarked, other.State())

	require.NoError(t, other.Unbookmark(ctx))
	assert.Equal(t, favorites.StateNotBookmarked, other.State())
}
