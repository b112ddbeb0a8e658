package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jumaleo/sokoni-api/initializers"
	"github.com/jumaleo/sokoni-api/routes"
)

func main() {
	initializers.LoadEnv()
	db := initializers.ConnectToDB()
	initializers.SyncDatabase(db)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "https://www.sokoni.store"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, db)
	routes.ProductRoutes(server, db)
	routes.CartRoutes(server, db)
	routes.OrderRoutes(server, db)
	server.Run()
}
