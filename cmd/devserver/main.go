package main

import (
	"fmt"
	"log"

	"gameshelf/client/internal/config"
	"gameshelf/client/internal/devserver"

	// Swagger imports
	_ "gameshelf/client/docs" // This is important for swag to find the generated docs
)

func init() {
	config.LoadConfig()
}

// @title           GameShelf Dev API
// @version         1.0
// @description     Local stand-in for the game catalog backend the GameShelf client talks to.
// @host            localhost:3000
// @BasePath        /
func main() {
	// Connect to the database
	devserver.Connect(config.AppConfig.DatabaseURL)
	devserver.Seed()

	router := devserver.Router()

	addr := ":" + config.AppConfig.Port
	fmt.Println("Dev backend is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost:" + config.AppConfig.Port + "/swagger/index.html")
	log.Fatal(router.Run(addr))
}
