package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jumaleo/sokoni-api/controllers"
	"github.com/jumaleo/sokoni-api/middlewares"
	"gorm.io/gorm"
)

func OrderRoutes(server *gin.Engine, db *gorm.DB) {
	server.POST("/checkout", middlewares.RequireAuth(db), controllers.Checkout(db))
	server.GET("/orders", middlewares.RequireAuth(db), controllers.GetMyOrders(db))
}
