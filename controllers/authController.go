package controllers

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jumaleo/sokoni-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Fallback token lifetime when ACCESS_TOKEN_EXPIRE_MINUTES is unset
	defaultTokenExpiryMinutes = 30

	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgUserAlreadyExists     = "user already exists"
	msgFailedToHashPassword  = "failed to hash password"
	msgInvalidCredentials    = "incorrect username or password"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
	msgUserCreated           = "User created successfully."
	msgProductNotFound       = "Product not found"
	msgCartItemNotFound      = "Cart item not found"
	msgEmptyCart             = "Cart is empty"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func tokenExpiryMinutes() int {
	minutes, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"))
	if err != nil || minutes <= 0 {
		return defaultTokenExpiryMinutes
	}
	return minutes
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":     user.ID,
		"username":    user.Username,
		"is_retailer": user.IsRetailer,
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(time.Duration(tokenExpiryMinutes()) * time.Minute).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

func checkUserExists(db *gorm.DB, email, username string) (bool, error) {
	var existingUser models.User
	result := db.Where("email = ? OR username = ?", email, username).Find(&existingUser)
	return result.RowsAffected > 0, result.Error
}

func findUserByUsername(db *gorm.DB, username string) (models.User, error) {
	var user models.User
	result := db.Where("username = ?", username).First(&user)
	return user, result.Error
}

// Signup handles user registration
func Signup(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var signUpData models.SignupData
		if err := ctx.ShouldBindJSON(&signUpData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		exists, err := checkUserExists(db, signUpData.Email, signUpData.Username)
		if err != nil {
			log.Println("Database error during user check:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
		if exists {
			sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
			return
		}

		hashedPassword, err := hashPassword(signUpData.Password)
		if err != nil {
			log.Println("Password hashing error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
			return
		}

		user := models.User{
			Username:   signUpData.Username,
			Email:      signUpData.Email,
			Password:   hashedPassword,
			IsRetailer: signUpData.IsRetailer,
		}
		if result := db.Create(&user); result.Error != nil {
			log.Println("User creation error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgUserCreated, "id": user.ID})
	}
}

// Login exchanges form credentials for an access token
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var loginData models.LoginData
		if err := ctx.ShouldBind(&loginData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		user, err := findUserByUsername(db, loginData.Username)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
			return
		}

		if err := comparePasswords(user.Password, loginData.Password); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
			return
		}

		tokenString, err := generateJWT(user)
		if err != nil {
			log.Println("JWT generation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"access_token": tokenString,
			"token_type":   "bearer",
		})
	}
}
