package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jumaleo/sokoni-api/middlewares"
	"github.com/jumaleo/sokoni-api/models"
	"gorm.io/gorm"
)

// AddToCart inserts a cart line for the caller. Stock is not checked here;
// a cart entry is not a reservation and stock is enforced at checkout.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middlewares.GetCurrentUser(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
			return
		}

		var cartItemCreate models.CartItemCreate
		if err := ctx.ShouldBindJSON(&cartItemCreate); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		var product models.Product
		if err := db.First(&product, cartItemCreate.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
			} else {
				log.Println("Database error:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			}
			return
		}

		cartItem := models.CartItem{
			UserID:    user.ID,
			ProductID: cartItemCreate.ProductID,
			Quantity:  cartItemCreate.Quantity,
		}
		if err := db.Create(&cartItem).Error; err != nil {
			log.Println("Create error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create cart item")
			return
		}

		ctx.JSON(http.StatusOK, cartItem)
	}
}

func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middlewares.GetCurrentUser(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
			return
		}

		var cartItems []models.CartItem
		if result := db.Where("user_id = ?", user.ID).Find(&cartItems); result.Error != nil {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}

		ctx.JSON(http.StatusOK, cartItems)
	}
}

// RemoveCartItem deletes a cart line owned by the caller. An item owned by
// someone else gets the same 404 as a missing one.
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middlewares.GetCurrentUser(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
			return
		}

		itemId, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item ID")
			return
		}

		result := db.Where("id = ? AND user_id = ?", itemId, user.ID).Delete(&models.CartItem{})
		if result.Error != nil {
			log.Println("Delete error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove cart item")
			return
		}
		if result.RowsAffected == 0 {
			sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}
