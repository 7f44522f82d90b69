package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshelf/client/internal/api"
	"gameshelf/client/internal/models"
)

func TestBuildGenres(t *testing.T) {
	games := []models.Game{
		{ID: "g1", Title: "Alpha"},
		{ID: "g2", Title: "Beta"},
		{ID: "g3", Title: "Gamma"},
	}
	assignments := []api.TagAssignment{
		{GameID: "g1", Tag: "Action"},
		{GameID: "g2", Tag: "Action"},
		{GameID: "g1", Tag: "RPG"},
	}

	genres := BuildGenres(games, assignments)
	require.Len(t, genres, 3)

	assert.Equal(t, "Action", genres[0].Name)
	assert.Equal(t, models.OtherGenre, genres[1].Name)
	assert.Equal(t, "RPG", genres[2].Name)

	require.Len(t, genres[0].Games, 2)
	assert.Equal(t, "g1", genres[0].Games[0].ID)
	assert.Equal(t, "g2", genres[0].Games[1].ID)

	require.Len(t, genres[1].Games, 1)
	assert.Equal(t, "g3", genres[1].Games[0].ID)

	require.Len(t, genres[2].Games, 1)
	assert.Equal(t, "g1", genres[2].Games[0].ID)

	// g1 carries its full tag list in every bucket it appears in
	assert.Equal(t, []string{"Action", "RPG"}, genres[0].Games[0].Tags)
	assert.Equal(t, []string{"Action", "RPG"}, genres[2].Games[0].Tags)
}

func TestBuildGenresCaseInsensitiveOrder(t *testing.T) {
	games := []models.Game{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	genres := BuildGenres(games, []api.TagAssignment{
		{GameID: "a", Tag: "strategy"},
		{GameID: "b", Tag: "Action"},
		{GameID: "c", Tag: "Platformer"},
	})
	require.Len(t, genres, 3)
	assert.Equal(t, "Action", genres[0].Name)
	assert.Equal(t, "Platformer", genres[1].Name)
	assert.Equal(t, "strategy", genres[2].Name)
}

func TestBuildGenresBlankTagGoesToOther(t *testing.T) {
	games := []models.Game{{ID: "g1"}, {ID: "g2"}}
	genres := BuildGenres(games, []api.TagAssignment{
		{GameID: "g1", Tag: "  "},
	})
	require.Len(t, genres, 1)
	assert.Equal(t, models.OtherGenre, genres[0].Name)
	// blank-tagged g1 first, then untagged g2 in catalog order
	require.Len(t, genres[0].Games, 2)
	assert.Equal(t, "g1", genres[0].Games[0].ID)
	assert.Equal(t, "g2", genres[0].Games[1].ID)
}

func TestBuildGenresDropsUnknownGames(t *testing.T) {
	games := []models.Game{{ID: "g1"}}
	genres := BuildGenres(games, []api.TagAssignment{
		{GameID: "ghost", Tag: "Action"},
		{GameID: "g1", Tag: "RPG"},
	})
	require.Len(t, genres, 1)
	assert.Equal(t, "RPG", genres[0].Name)
}

func TestBuildGenresEmptyInputs(t *testing.T) {
	assert.Empty(t, BuildGenres(nil, nil))
	assert.Empty(t, BuildGenres(nil, []api.TagAssignment{{GameID: "g", Tag: "x"}}))
}

func TestAttachTags(t *testing.T) {
	games := []models.Game{{ID: "g1"}, {ID: "g2"}}
	got := AttachTags(games, []api.TagAssignment{
		{GameID: "g1", Tag: "Action"},
		{GameID: "g1", Tag: "RPG"},
		{GameID: "g1", Tag: ""},
	})
	require.Len(t, got, 2)
	assert.Equal(t, []string{"Action", "RPG"}, got[0].Tags)
	assert.Empty(t, got[1].Tags)

	// the input games are not mutated
	assert.Empty(t, games[0].Tags)
}

func TestTagVocabulary(t *testing.T) {
	got := TagVocabulary([]api.TagAssignment{
		{GameID: "a", Tag: "Action"},
		{GameID: "b", Tag: "RPG"},
		{GameID: "c", Tag: "Action"},
		{GameID: "d", Tag: " "},
	})
	assert.Equal(t, []string{"Action", "RPG"}, got)
}

func TestGamesByID(t *testing.T) {
	byID := GamesByID([]models.Game{{ID: "g1", Title: "Alpha"}})
	assert.Equal(t, "Alpha", byID["g1"].Title)
}
