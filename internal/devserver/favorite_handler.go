package devserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

// FavoriteInput is the POST /favorites body. AddedAt is optional; the
// server stamps the current time when it is absent or unparseable.
type FavoriteInput struct {
	UserID   string `json:"user_id" binding:"required"`
	GameID   string `json:"game_id" binding:"required"`
	Progress string `json:"progress"`
	Liked    bool   `json:"liked"`
	AddedAt  string `json:"added_at"`
}

// FavoritePatch is the partial PATCH body; absent fields stay untouched.
type FavoritePatch struct {
	Liked    *bool   `json:"liked"`
	Progress *string `json:"progress"`
}

// endregion

func validProgress(p string) bool {
	return p == "want" || p == "played" || p == "completed"
}

// GetUserFavorites godoc
// @Summary      List a user's favorites
// @Tags         favorites
// @Produce      json
// @Param        userID  path  string  true  "User ID"
// @Success      200  {array}   Favorite
// @Failure      500  {object}  ErrorResponse
// @Router       /favorites/user/{userID} [get]
func GetUserFavorites(c *gin.Context) {
	var favorites []Favorite
	if err := DB.Where("user_id = ?", c.Param("userID")).Order("added_at").Find(&favorites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// CreateFavorite godoc
// @Summary      Create a favorite
// @Description  Creates the (user, game) favorite record. An existing record answers 409; clients treat that as success.
// @Accept       json
// @Tags         favorites
// @Produce      json
// @Param        input  body  FavoriteInput  true  "Favorite"
// @Success      201  {object}  Favorite
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Favorite already exists"
// @Router       /favorites [post]
func CreateFavorite(c *gin.Context) {
	var input FavoriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Progress == "" {
		input.Progress = "want"
	}
	if !validProgress(input.Progress) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid progress value"})
		return
	}

	var existing Favorite
	err := DB.Where("user_id = ? AND game_id = ?", input.UserID, input.GameID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Favorite already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check favorites"})
		return
	}

	addedAt, parseErr := time.Parse(time.RFC3339, input.AddedAt)
	if parseErr != nil {
		addedAt = time.Now().UTC()
	}

	favorite := Favorite{
		UserID:   input.UserID,
		GameID:   input.GameID,
		Progress: input.Progress,
		Liked:    input.Liked,
		AddedAt:  addedAt,
	}
	if err := DB.Create(&favorite).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Favorite already exists"})
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

// UpdateFavorite godoc
// @Summary      Patch a favorite
// @Description  Partially updates liked and/or progress. A missing record answers 404 so clients can fall back to create.
// @Accept       json
// @Tags         favorites
// @Produce      json
// @Param        userID  path  string         true  "User ID"
// @Param        gameID  path  string         true  "Game ID"
// @Param        input   body  FavoritePatch  true  "Fields to update"
// @Success      200  {object}  Favorite
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Favorite not found"
// @Router       /favorites/{userID}/{gameID} [patch]
func UpdateFavorite(c *gin.Context) {
	var patch FavoritePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if patch.Progress != nil && !validProgress(*patch.Progress) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid progress value"})
		return
	}

	var favorite Favorite
	err := DB.Where("user_id = ? AND game_id = ?", c.Param("userID"), c.Param("gameID")).First(&favorite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorite"})
		return
	}

	updates := map[string]any{}
	if patch.Liked != nil {
		updates["liked"] = *patch.Liked
	}
	if patch.Progress != nil {
		updates["progress"] = *patch.Progress
	}
	if len(updates) > 0 {
		if err := DB.Model(&favorite).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorite"})
			return
		}
	}
	c.JSON(http.StatusOK, favorite)
}

// DeleteFavorite godoc
// @Summary      Delete a favorite
// @Tags         favorites
// @Produce      json
// @Param        userID  path  string  true  "User ID"
// @Param        gameID  path  string  true  "Game ID"
// @Success      200  {object}  map[string]string "{"message": "Favorite deleted"}"
// @Failure      404  {object}  ErrorResponse "Favorite not found"
// @Router       /favorites/{userID}/{gameID} [delete]
func DeleteFavorite(c *gin.Context) {
	result := DB.Where("user_id = ? AND game_id = ?", c.Param("userID"), c.Param("gameID")).Delete(&Favorite{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete favorite"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite deleted"})
}
