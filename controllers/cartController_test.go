package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/jumaleo/sokoni-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCart(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(t, db)
	retailer := createTestUser(t, db, "retailer", true)
	buyer := createTestUser(t, db, "buyer", false)
	product := createTestProduct(t, db, retailer.ID, "Product A", 10.00, 5)

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": authHeader(t, buyer),
	}

	body := fmt.Sprintf(`{"productId": %d, "quantity": 2}`, product.ID)
	recorder := performRequest(router, http.MethodPost, "/cart", strings.NewReader(body), headers)
	require.Equal(t, http.StatusOK, recorder.Code)

	var item models.CartItem
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &item))
	assert.Equal(t, buyer.ID, item.UserID)
	assert.Equal(t, product.ID, item.ProductID)
	assert.Equal(t, 2, item.Quantity)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(t, db)
	buyer := createTestUser(t, db, "buyer", false)

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": authHeader(t, buyer),
	}

	recorder := performRequest(router, http.MethodPost, "/cart", strings.NewReader(`{"productId": 9999, "quantity": 1}`), headers)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAddToCartInvalidQuantity(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(t, db)
	retailer := createTestUser(t, db, "retailer", true)
	buyer := createTestUser(t, db, "buyer", false)
	product := createTestProduct(t, db, retailer.ID, "Product A", 10.00, 5)

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": authHeader(t, buyer),
	}

	for _, quantity := range []int{0, -3} {
		body := fmt.Sprintf(`{"productId": %d, "quantity": %d}`, product.ID, quantity)
		recorder := performRequest(router, http.MethodPost, "/cart", strings.NewReader(body), headers)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, "quantity %d should be rejected", quantity)
	}
}

func TestGetCartIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(t, db)
	retailer := createTestUser(t, db, "retailer", true)
	buyer := createTestUser(t, db, "buyer", false)
	product := createTestProduct(t, db, retailer.ID, "Product A", 10.00, 5)
	addCartItem(t, db, buyer.ID, product.ID, 2)

	headers := map[string]string{"Authorization": authHeader(t, buyer)}

	first := performRequest(router, http.MethodGet, "/cart", nil, headers)
	second := performRequest(router, http.MethodGet, "/cart", nil, headers)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestRemoveCartItem(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(t, db)
	retailer := createTestUser(t, db, "retailer", true)
	buyer := createTestUser(t, db, "buyer", false)
	product := createTestProduct(t, db, retailer.ID, "Product A", 10.00, 5)
	item := addCartItem(t, db, buyer.ID, product.ID, 1)

	headers := map[string]string{"Authorization": authHeader(t, buyer)}

	recorder := performRequest(router, http.MethodDelete, fmt.Sprintf("/cart/%d", item.ID), nil, headers)
	require.Equal(t, http.StatusOK, recorder.Code)

	var remaining []models.CartItem
	require.NoError(t, db.Where("user_id = ?", buyer.ID).Find(&remaining).Error)
	assert.Empty(t, remaining)
}

func TestRemoveCartItemOfAnotherUserLooksMissing(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(t, db)
	retailer := createTestUser(t, db, "retailer", true)
	owner := createTestUser(t, db, "owner", false)
	intruder := createTestUser(t, db, "intruder", false)
	product := createTestProduct(t, db, retailer.ID, "Product A", 10.00, 5)
	item := addCartItem(t, db, owner.ID, product.ID, 1)

	headers := map[string]string{"Authorization": authHeader(t, intruder)}

	// Someone else's item and a nonexistent one are indistinguishable.
	existing := performRequest(router, http.MethodDelete, fmt.Sprintf("/cart/%d", item.ID), nil, headers)
	missing := performRequest(router, http.MethodDelete, "/cart/9999", nil, headers)
	assert.Equal(t, http.StatusNotFound, existing.Code)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, existing.Body.String(), missing.Body.String())

	var kept models.CartItem
	assert.NoError(t, db.First(&kept, item.ID).Error)
}
