package devserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// GetGames godoc
// @Summary      List games
// @Description  Returns the full catalog as a bare array, or a paginated {data, meta} envelope when page/limit are given.
// @Tags         catalog
// @Produce      json
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {array}   Game
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	if c.Query("page") != "" || c.Query("limit") != "" {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > 100 {
			limit = 20
		}

		response, err := Paginate[Game](DB, page, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
			return
		}
		c.JSON(http.StatusOK, response)
		return
	}

	var games []Game
	if err := DB.Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
		return
	}
	c.JSON(http.StatusOK, games)
}

// GetTags godoc
// @Summary      List tag assignments
// @Description  Returns every (game_id, tag) assignment in insertion order.
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   TagAssignment
// @Failure      500  {object}  ErrorResponse
// @Router       /tags [get]
func GetTags(c *gin.Context) {
	var tags []TagAssignment
	if err := DB.Order("id").Find(&tags).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tags"})
		return
	}
	c.JSON(http.StatusOK, tags)
}
