package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jumaleo/sokoni-api/controllers"
	"github.com/jumaleo/sokoni-api/middlewares"
	"gorm.io/gorm"
)

func CartRoutes(server *gin.Engine, db *gorm.DB) {
	cart := server.Group("/cart")
	cart.Use(middlewares.RequireAuth(db))
	{
		cart.POST("", controllers.AddToCart(db))
		cart.GET("", controllers.GetCart(db))
		cart.DELETE("/:id", controllers.RemoveCartItem(db))
	}
}
