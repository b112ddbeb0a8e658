package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jumaleo/sokoni-api/middlewares"
	"github.com/jumaleo/sokoni-api/models"
	"gorm.io/gorm"
)

// GetMyOrders returns the caller's order history, newest first.
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middlewares.GetCurrentUser(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
			return
		}

		var orders []models.Order
		result := db.Preload("OrderItems").
			Where("user_id = ?", user.ID).
			Order("created_at desc").
			Find(&orders)
		if result.Error != nil {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
			return
		}

		ctx.JSON(http.StatusOK, orders)
	}
}
