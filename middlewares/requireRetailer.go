package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RequireRetailer() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := GetCurrentUser(ctx)
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		if !user.IsRetailer {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Only retailers can manage products"})
			return
		}

		ctx.Next()
	}
}
