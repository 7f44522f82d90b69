package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second, nil)
}

func TestFetchListShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"bare array", `[{"id":"a"},{"id":"b"}]`, 2},
		{"data envelope", `{"data":[{"id":"a"}]}`, 1},
		{"empty array", `[]`, 0},
		{"envelope without data", `{"total":3}`, 0},
		{"garbage", `<html>oops</html>`, 0},
		{"empty body", ``, 0},
		{"non-object entries skipped", `[{"id":"a"},"stray",7,{"id":"b"}]`, 2},
		{"bare object", `{"id":"a"}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			records, err := c.FetchList(context.Background(), "/games")
			require.NoError(t, err)
			assert.Len(t, records, tc.want)
		})
	}
}

func TestFetchListRemoteError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "game not found", http.StatusNotFound)
	}))

	_, err := c.FetchList(context.Background(), "/games")
	require.Error(t, err)

	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusNotFound, re.Status)
	assert.Equal(t, "game not found", re.Body)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
}

func TestFetchListEmptyErrorBody(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.FetchList(context.Background(), "/games")
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "request failed", re.Body)
}

func TestGames(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/games", r.URL.Path)
		w.Write([]byte(`[
			{"game_id":"g1","title":"Hollow Knight","image":"/img/hk.png","rating":4.8},
			{"id":"g2","name":"Celeste"},
			{"title":"no id, dropped"}
		]`))
	}))

	games, err := c.Games(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.Equal(t, "g1", games[0].ID)
	assert.Equal(t, "Hollow Knight", games[0].Title)
	assert.Equal(t, c.BaseURL()+"/img/hk.png", games[0].ImageURL)
	require.NotNil(t, games[0].Rating)
	assert.Equal(t, 4.8, *games[0].Rating)

	assert.Equal(t, "g2", games[1].ID, "id fallback key")
	assert.Equal(t, "Celeste", games[1].Title, "name fallback key")
	assert.Nil(t, games[1].Rating)
}

func TestGameReviews(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reviews/game/g1", r.URL.Path)
		w.Write([]byte(`{"data":[
			{"user_id":"u1","game_id":"g1","rating":4,"review":"solid"},
			{"userId":"u2","gameId":"g1","text":"camelCase row"}
		]}`))
	}))

	reviews, err := c.GameReviews(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	assert.Equal(t, "u1", reviews[0].UserID)
	assert.Equal(t, "solid", reviews[0].Text)
	require.NotNil(t, reviews[0].Rating)
	assert.Equal(t, 4.0, *reviews[0].Rating)

	assert.Equal(t, "u2", reviews[1].UserID)
	assert.Equal(t, "camelCase row", reviews[1].Text)
	assert.Nil(t, reviews[1].Rating)
}

func TestGameDiscussions(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"discussion_id":"d1","user_id":"u1","discussion_text":"hello"},
			{"id":"d2","userId":"u2","text":"hi back","replyId":"d1"},
			{"text":"no id, dropped"}
		]`))
	}))

	items, err := c.GameDiscussions(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "d1", items[0].ID)
	assert.Empty(t, items[0].ReplyID)
	assert.Equal(t, "d2", items[1].ID)
	assert.Equal(t, "d1", items[1].ReplyID)
}

func TestUserFavorites(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/favorites/user/u1", r.URL.Path)
		w.Write([]byte(`[
			{"user_id":"u1","progress":"played","liked":true,"added_at":"2024-03-01T12:00:00Z","game":{"game_id":"g1","title":"Hollow Knight"}},
			{"user_id":"u1","game_id":"g2","progress":"not-a-progress"}
		]`))
	}))

	favs, err := c.UserFavorites(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, favs, 2)

	assert.Equal(t, "g1", favs[0].GameID, "game id from the nested payload")
	assert.Equal(t, "Hollow Knight", favs[0].Game.Title)
	assert.True(t, favs[0].Liked)
	assert.Equal(t, 2024, favs[0].AddedAt.Year())

	assert.Equal(t, "g2", favs[1].GameID, "flattened payload")
	assert.Equal(t, "want", string(favs[1].Progress), "unknown progress defaults")
}

func TestCreateFavoriteConflict(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/favorites", r.URL.Path)
		http.Error(w, `{"error":"already exists"}`, http.StatusConflict)
	}))

	err := c.CreateFavorite(context.Background(), NewFavoriteInput("u1", "g1", "want", false))
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestUpdateFavorite(t *testing.T) {
	var got map[string]any
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/favorites/u1/g1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))

	liked := true
	require.NoError(t, c.UpdateFavorite(context.Background(), "u1", "g1", FavoritePatch{Liked: &liked}))
	assert.Equal(t, true, got["liked"])
	_, hasProgress := got["progress"]
	assert.False(t, hasProgress, "unset patch fields stay off the wire")
}

func TestMutationsRequireSession(t *testing.T) {
	c := New("http://localhost:0", time.Second, nil)
	ctx := context.Background()

	assert.ErrorIs(t, c.CreateReview(ctx, ReviewInput{GameID: "g1"}), ErrMissingSession)
	assert.ErrorIs(t, c.CreateDiscussion(ctx, DiscussionInput{GameID: "g1"}), ErrMissingSession)
	assert.ErrorIs(t, c.CreateFavorite(ctx, NewFavoriteInput("", "g1", "want", false)), ErrMissingSession)
	assert.ErrorIs(t, c.UpdateFavorite(ctx, "", "g1", FavoritePatch{}), ErrMissingSession)
	assert.ErrorIs(t, c.DeleteFavorite(ctx, "", "g1"), ErrMissingSession)
}

func TestLogin(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Users/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "demo", body["name"])
		w.Write([]byte(`{"id":"u1","name":"demo","token":"jwt-here"}`))
	}))

	user, err := c.Login(context.Background(), "demo", "demo1234")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "demo", user.Name)
}

func TestLoginRejected(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid credentials"}`, http.StatusUnauthorized)
	}))

	_, err := c.Login(context.Background(), "demo", "wrong")
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusUnauthorized, re.Status)
}
