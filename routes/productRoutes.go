package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jumaleo/sokoni-api/controllers"
	"github.com/jumaleo/sokoni-api/middlewares"
	"gorm.io/gorm"
)

func ProductRoutes(server *gin.Engine, db *gorm.DB) {
	products := server.Group("/products")
	products.GET("/all", controllers.GetProducts(db))

	retailer := products.Group("")
	retailer.Use(middlewares.RequireAuth(db), middlewares.RequireRetailer())
	{
		retailer.POST("/add-product", controllers.CreateProduct(db))
		retailer.GET("/me", controllers.GetMyProducts(db))
		retailer.PATCH("/:id", controllers.UpdateProduct(db))
		retailer.DELETE("/:id", controllers.DeleteProduct(db))
		retailer.POST("/:id/images", controllers.UploadProductImages(db))
	}
}
