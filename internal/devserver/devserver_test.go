package devserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshelf/client/internal/config"
	"gameshelf/client/pkg/jwt"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	Connect(filepath.Join(t.TempDir(), "dev.db"))
	Seed()
	return Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetGames(t *testing.T) {
	router := setupRouter(t)

	t.Run("bare array", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/games", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var games []Game
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &games))
		assert.Len(t, games, 5)
	})

	t.Run("paginated envelope", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/games?page=1&limit=2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Data []Game         `json:"data"`
			Meta PaginationMeta `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Len(t, envelope.Data, 2)
		assert.Equal(t, int64(5), envelope.Meta.TotalItems)
		assert.Equal(t, 3, envelope.Meta.TotalPages)
	})
}

func TestGetTags(t *testing.T) {
	router := setupRouter(t)
	w := doJSON(t, router, http.MethodGet, "/tags", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tags []TagAssignment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
	require.Len(t, tags, 6)
	assert.Equal(t, "hollow-knight", tags[0].GameID)
	assert.Equal(t, "Metroidvania", tags[0].Tag)
}

func TestFavoriteLifecycle(t *testing.T) {
	router := setupRouter(t)
	input := FavoriteInput{UserID: "u1", GameID: "celeste", Progress: "want", AddedAt: "2024-03-01T12:00:00Z"}

	w := doJSON(t, router, http.MethodPost, "/favorites", input)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/favorites", input)
	assert.Equal(t, http.StatusConflict, w.Code, "second create answers 409")

	liked := true
	w = doJSON(t, router, http.MethodPatch, "/favorites/u1/celeste", FavoritePatch{Liked: &liked})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/favorites/user/u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var favorites []Favorite
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &favorites))
	require.Len(t, favorites, 1)
	assert.True(t, favorites[0].Liked)
	assert.Equal(t, "want", favorites[0].Progress)

	w = doJSON(t, router, http.MethodDelete, "/favorites/u1/celeste", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/favorites/u1/celeste", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "second delete answers 404")
}

func TestUpdateFavoriteNotFound(t *testing.T) {
	router := setupRouter(t)
	progress := "played"
	w := doJSON(t, router, http.MethodPatch, "/favorites/u1/hades", FavoritePatch{Progress: &progress})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateFavoriteRejectsBadProgress(t *testing.T) {
	router := setupRouter(t)
	w := doJSON(t, router, http.MethodPost, "/favorites", FavoriteInput{UserID: "u1", GameID: "hades", Progress: "finished"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReview(t *testing.T) {
	router := setupRouter(t)

	rating := 4.5
	w := doJSON(t, router, http.MethodPost, "/reviews", ReviewInput{GameID: "hades", UserID: "u1", Rating: &rating, Review: "ran it all night"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/reviews/game/hades", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var reviews []Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, "u1", reviews[0].UserID)

	w = doJSON(t, router, http.MethodPost, "/reviews", ReviewInput{GameID: "no-such-game", UserID: "u1"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateDiscussion(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/discussions", DiscussionInput{UserID: "u1", GameID: "hades", Text: "sword or shield?"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created Discussion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodPost, "/discussions", DiscussionInput{UserID: "u2", GameID: "hades", Text: "shield", ReplyID: created.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/discussions", DiscussionInput{UserID: "u2", GameID: "hades", Text: "orphan", ReplyID: "no-such-id"})
	assert.Equal(t, http.StatusNotFound, w.Code, "unknown parent rejected")

	w = doJSON(t, router, http.MethodPost, "/discussions", DiscussionInput{UserID: "u2", GameID: "no-such-game", Text: "x"})
	assert.Equal(t, http.StatusNotFound, w.Code, "unknown game rejected")
}

func TestRegisterAndLogin(t *testing.T) {
	router := setupRouter(t)
	creds := CredentialsInput{Name: "newplayer", Password: "longenough"}

	w := doJSON(t, router, http.MethodPost, "/Users/register", creds)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/Users/register", creds)
	assert.Equal(t, http.StatusConflict, w.Code, "duplicate name answers 409")

	w = doJSON(t, router, http.MethodPost, "/Users/login", creds)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "newplayer", resp["name"])
	require.NotEmpty(t, resp["token"])

	userID, err := jwt.ParseToken(resp["token"])
	require.NoError(t, err)
	assert.Equal(t, resp["id"], userID)

	w = doJSON(t, router, http.MethodPost, "/Users/login", CredentialsInput{Name: "newplayer", Password: "wrongpassword"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginSeedUser(t *testing.T) {
	router := setupRouter(t)
	w := doJSON(t, router, http.MethodPost, "/Users/login", CredentialsInput{Name: "demo", Password: "demo1234"})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestPing(t *testing.T) {
	router := setupRouter(t)
	w := doJSON(t, router, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
