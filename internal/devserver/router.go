// Package devserver is a self-contained stand-in for the real catalog
// backend: the same endpoints, status codes and field names, backed by an
// embedded database so the client can be developed and integration-tested
// locally.
package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router builds the gin engine with every backend route registered.
func Router() *gin.Engine {
	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	router.Use(OptionalAuthMiddleware())

	// Catalog
	router.GET("/games", GetGames)
	router.GET("/tags", GetTags)

	// Reviews
	router.GET("/reviews", GetAllReviews)
	router.GET("/reviews/game/:gameID", GetGameReviews)
	router.POST("/reviews", CreateReview)

	// Discussions
	router.GET("/discussions/game/:gameID", GetGameDiscussions)
	router.POST("/discussions", CreateDiscussion)

	// Favorites
	router.GET("/favorites/user/:userID", GetUserFavorites)
	router.POST("/favorites", CreateFavorite)
	router.PATCH("/favorites/:userID/:gameID", UpdateFavorite)
	router.DELETE("/favorites/:userID/:gameID", DeleteFavorite)

	// Users and auth (the original service capitalizes the auth prefix)
	router.GET("/users", GetUsers)
	router.POST("/Users/login", LoginUser)
	router.POST("/Users/register", RegisterUser)

	return router
}
