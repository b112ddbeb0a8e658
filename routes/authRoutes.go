package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jumaleo/sokoni-api/controllers"
	"gorm.io/gorm"
)

func AuthRoutes(server *gin.Engine, db *gorm.DB) {
	server.POST("/signup", controllers.Signup(db))
	server.POST("/login/access-token", controllers.Login(db))
}
