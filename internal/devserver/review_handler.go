package devserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
)

// region --- DTOs ---

// ReviewInput is the POST /reviews body. This endpoint takes camelCase keys
// for compatibility with the original service.
type ReviewInput struct {
	GameID string   `json:"gameId" binding:"required"`
	UserID string   `json:"userId" binding:"required"`
	Review string   `json:"review"`
	Rating *float64 `json:"rating"`
}

// DiscussionInput is the POST /discussions body.
type DiscussionInput struct {
	UserID  string `json:"user_id" binding:"required"`
	GameID  string `json:"game_id" binding:"required"`
	Text    string `json:"discussion_text"`
	ReplyID string `json:"reply_id"`
}

// endregion

// GetAllReviews godoc
// @Summary      List all reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}   Review
// @Failure      500  {object}  ErrorResponse
// @Router       /reviews [get]
func GetAllReviews(c *gin.Context) {
	var reviews []Review
	if err := DB.Order("created_at").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetGameReviews godoc
// @Summary      List reviews for a game
// @Tags         reviews
// @Produce      json
// @Param        gameID  path  string  true  "Game ID"
// @Success      200  {array}   Review
// @Failure      500  {object}  ErrorResponse
// @Router       /reviews/game/{gameID} [get]
func GetGameReviews(c *gin.Context) {
	var reviews []Review
	if err := DB.Where("game_id = ?", c.Param("gameID")).Order("created_at").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview godoc
// @Summary      Create a review
// @Accept       json
// @Tags         reviews
// @Produce      json
// @Param        input  body  ReviewInput  true  "Review"
// @Success      201  {object}  Review
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /reviews [post]
func CreateReview(c *gin.Context) {
	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var game Game
	if err := DB.First(&game, "id = ?", input.GameID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	review := Review{
		ID:        xid.New().String(),
		GameID:    input.GameID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Review:    input.Review,
		CreatedAt: time.Now().UTC(),
	}
	if err := DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, review)
}

// GetGameDiscussions godoc
// @Summary      List discussions for a game
// @Tags         discussions
// @Produce      json
// @Param        gameID  path  string  true  "Game ID"
// @Success      200  {array}   Discussion
// @Failure      500  {object}  ErrorResponse
// @Router       /discussions/game/{gameID} [get]
func GetGameDiscussions(c *gin.Context) {
	var discussions []Discussion
	if err := DB.Where("game_id = ?", c.Param("gameID")).Order("created_at").Find(&discussions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch discussions"})
		return
	}
	c.JSON(http.StatusOK, discussions)
}

// CreateDiscussion godoc
// @Summary      Create a discussion entry or reply
// @Accept       json
// @Tags         discussions
// @Produce      json
// @Param        input  body  DiscussionInput  true  "Discussion"
// @Success      201  {object}  Discussion
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game or parent not found"
// @Router       /discussions [post]
func CreateDiscussion(c *gin.Context) {
	var input DiscussionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var game Game
	if err := DB.First(&game, "id = ?", input.GameID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	if input.ReplyID != "" {
		var parent Discussion
		if err := DB.First(&parent, "id = ?", input.ReplyID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Parent discussion not found"})
			return
		}
	}

	discussion := Discussion{
		ID:             xid.New().String(),
		GameID:         input.GameID,
		UserID:         input.UserID,
		DiscussionText: input.Text,
		ReplyID:        input.ReplyID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := DB.Create(&discussion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create discussion"})
		return
	}
	c.JSON(http.StatusCreated, discussion)
}
