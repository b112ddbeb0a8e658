package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jumaleo/sokoni-api/middlewares"
	"github.com/jumaleo/sokoni-api/models"
	"github.com/jumaleo/sokoni-api/utils"
	"gorm.io/gorm"
)

var ErrEmptyCart = errors.New("cart is empty")

// InsufficientStockError names the cart line that blocked a checkout,
// whether the product ran out of stock or was removed entirely.
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	if e.ProductName == "" {
		return fmt.Sprintf("product %d is no longer available", e.ProductID)
	}
	return fmt.Sprintf("product '%s' is out of stock", e.ProductName)
}

func generateOrderReference() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PerformCheckout converts the user's cart into an order inside a single
// transaction: every line is priced from one in-transaction product read,
// stock is decremented per line, the order and its items are created and
// the cart lines deleted. Any failure rolls the whole thing back.
func PerformCheckout(db *gorm.DB, userID uint) (*models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := tx.Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		var total float64
		orderItems := make([]models.OrderItem, 0, len(cartItems))
		cartItemIds := make([]uint, 0, len(cartItems))

		for _, item := range cartItems {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &InsufficientStockError{ProductID: item.ProductID}
				}
				return err
			}
			if product.Stock < item.Quantity {
				return &InsufficientStockError{ProductID: product.ID, ProductName: product.Name}
			}

			// The decrement re-checks stock so that two checkouts racing
			// for the same units cannot both succeed: whichever commits
			// second finds no matching row and aborts.
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", product.ID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return &InsufficientStockError{ProductID: product.ID, ProductName: product.Name}
			}

			// Unit price is frozen from the same read that feeds the
			// total, so the order total always equals the item sum.
			total += product.Price * float64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
			})
			cartItemIds = append(cartItemIds, item.ID)
		}

		order = models.Order{
			UserID:     userID,
			Reference:  generateOrderReference(),
			TotalPrice: total,
			OrderItems: orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("id IN ?", cartItemIds).Delete(&models.CartItem{}).Error
	})

	if err != nil {
		return nil, err
	}
	return &order, nil
}

func sendOrderConfirmationEmail(user models.User, order *models.Order) error {
	emailData := utils.EmailData{
		Name:           user.Username,
		Message:        "Thank you for your order! We have received it and will process it shortly.",
		OrderReference: order.Reference,
		TotalPrice:     order.TotalPrice,
		LogoURL:        "https://www.sokoni.store/images/logo.jpg",
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	return utils.SendEmail(user.Email, "Order Confirmation", emailData, templatePath)
}

// Checkout handles POST /checkout
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middlewares.GetCurrentUser(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
			return
		}

		order, err := PerformCheckout(db, user.ID)
		if err != nil {
			var stockErr *InsufficientStockError
			switch {
			case errors.Is(err, ErrEmptyCart):
				sendErrorResponse(ctx, http.StatusBadRequest, msgEmptyCart)
			case errors.As(err, &stockErr):
				sendErrorResponse(ctx, http.StatusBadRequest, stockErr.Error())
			default:
				log.Println("Checkout error:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			}
			return
		}

		// Both notifications are best-effort; the order is already
		// committed and must not be affected by their failure.
		if err := sendOrderConfirmationEmail(user, order); err != nil {
			log.Println("Error sending order confirmation email:", err)
		}
		if err := utils.NotifyOrderCreated(order); err != nil {
			log.Println("Order webhook notification failed:", err)
		}

		ctx.JSON(http.StatusOK, order)
	}
}
