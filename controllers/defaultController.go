package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Sokoni API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/signup" - Create user account
- POST "/login/access-token" - Exchange credentials for an access token

PRODUCT
- POST "/products/add-product" - Create new product (retailer)
- GET "/products/all" - Get all products
- GET "/products/me" - Get your products (retailer)
- PATCH "/products/{id}" - Update your product (retailer)
- DELETE "/products/{id}" - Delete your product (retailer)
- POST "/products/{id}/images" - Upload product images (retailer)

CART
- POST "/cart" - Add a product to your cart
- GET "/cart" - Get your cart
- DELETE "/cart/{id}" - Remove an item from your cart

ORDER
- POST "/checkout" - Convert your cart into an order
- GET "/orders" - Get your past orders`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
