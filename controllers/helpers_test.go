package controllers_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jumaleo/sokoni-api/models"
	"github.com/jumaleo/sokoni-api/routes"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testJWTSecret = "test-secret"
	testPassword  = "password123"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single pooled connection keeps every query on the same in-memory
	// database and serializes concurrent transactions.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func setupRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", testJWTSecret)

	gin.SetMode(gin.TestMode)
	server := gin.New()
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, db)
	routes.ProductRoutes(server, db)
	routes.CartRoutes(server, db)
	routes.OrderRoutes(server, db)
	return server
}

func createTestUser(t *testing.T, db *gorm.DB, username string, isRetailer bool) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:   username,
		Email:      username + "@example.com",
		Password:   string(hash),
		IsRetailer: isRetailer,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, retailerID uint, name string, price float64, stock int) models.Product {
	t.Helper()

	product := models.Product{
		Name:        name,
		Description: name + " description",
		Price:       price,
		Stock:       stock,
		RetailerID:  retailerID,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func addCartItem(t *testing.T, db *gorm.DB, userID, productID uint, quantity int) models.CartItem {
	t.Helper()

	item := models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func authHeader(t *testing.T, user models.User) string {
	t.Helper()
	t.Setenv("JWT_SECRET", testJWTSecret)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":     user.ID,
		"username":    user.Username,
		"is_retailer": user.IsRetailer,
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func performRequest(router *gin.Engine, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}
