package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/jumaleo/sokoni-api/middlewares"
	"github.com/jumaleo/sokoni-api/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// Product handlers
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middlewares.GetCurrentUser(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
			return
		}

		var productCreate models.ProductCreate
		if err := ctx.ShouldBindJSON(&productCreate); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		product := models.Product{
			Name:        productCreate.Name,
			Description: productCreate.Description,
			Price:       productCreate.Price,
			Stock:       productCreate.Stock,
			RetailerID:  user.ID,
		}
		if err := db.Create(&product).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
			return
		}

		ctx.JSON(http.StatusOK, product)
	}
}

func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var products []models.Product

		// Add pagination
		page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "12"))
		offset := (page - 1) * limit

		query := db.Model(&models.Product{})

		// Add search by name if provided
		if search := ctx.Query("search"); search != "" {
			query = query.Where("name LIKE ?", "%"+search+"%")
		}

		result := query.Limit(limit).Offset(offset).Find(&products)
		if result.Error != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
			return
		}

		// Get total count for pagination
		var count int64
		countQuery := db.Model(&models.Product{})
		if search := ctx.Query("search"); search != "" {
			countQuery = countQuery.Where("name LIKE ?", "%"+search+"%")
		}
		countQuery.Count(&count)

		ctx.JSON(http.StatusOK, gin.H{
			"products": products,
			"metadata": gin.H{
				"total": count,
				"page":  page,
				"limit": limit,
			},
		})
	}
}

func GetMyProducts(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middlewares.GetCurrentUser(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
			return
		}

		var products []models.Product
		if result := db.Where("retailer_id = ?", user.ID).Find(&products); result.Error != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
			return
		}

		ctx.JSON(http.StatusOK, products)
	}
}

// UpdateProduct applies the mutable-field whitelist inside the same
// transaction as the ownership check. A product owned by another retailer
// is reported exactly like a missing one.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middlewares.GetCurrentUser(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
			return
		}

		productId, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
			return
		}

		var productUpdate models.ProductUpdate
		if err := ctx.ShouldBindJSON(&productUpdate); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		var product models.Product
		txErr := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id = ? AND retailer_id = ?", productId, user.ID).First(&product).Error; err != nil {
				return err
			}

			if productUpdate.Name != nil {
				product.Name = *productUpdate.Name
			}
			if productUpdate.Description != nil {
				product.Description = *productUpdate.Description
			}
			if productUpdate.Price != nil {
				product.Price = *productUpdate.Price
			}
			if productUpdate.Stock != nil {
				product.Stock = *productUpdate.Stock
			}

			return tx.Save(&product).Error
		})

		if txErr != nil {
			if errors.Is(txErr, gorm.ErrRecordNotFound) {
				respondWithError(ctx, http.StatusNotFound, msgProductNotFound, nil)
			} else {
				respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", txErr)
			}
			return
		}

		ctx.JSON(http.StatusOK, product)
	}
}

func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middlewares.GetCurrentUser(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
			return
		}

		productId, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
			return
		}

		result := db.Where("id = ? AND retailer_id = ?", productId, user.ID).Delete(&models.Product{})
		if result.Error != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to delete product", result.Error)
			return
		}
		if result.RowsAffected == 0 {
			respondWithError(ctx, http.StatusNotFound, msgProductNotFound, nil)
			return
		}

		ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully."})
	}
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

func UploadProductImages(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middlewares.GetCurrentUser(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
			return
		}

		productId, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
			return
		}

		var product models.Product
		if err := db.Where("id = ? AND retailer_id = ?", productId, user.ID).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(ctx, http.StatusNotFound, msgProductNotFound, nil)
			} else {
				respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
			}
			return
		}

		form, err := ctx.MultipartForm()
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
			return
		}

		files := form.File["images"]
		if len(files) == 0 {
			respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
			return
		}

		uploader, err := getAWSUploader()
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
			return
		}

		var uploadedUrls []string
		var failedUploads []string

		for _, file := range files {
			f, openErr := file.Open()
			if openErr != nil {
				log.Printf("Error opening file %s: %v", file.Filename, openErr)
				failedUploads = append(failedUploads, file.Filename)
				continue
			}

			// Unique key so concurrent uploads never overwrite each other
			uniqueFilename := fmt.Sprintf("%d-%s-%s", productId, time.Now().Format("20060102150405"), file.Filename)

			result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
				Bucket:      aws.String(os.Getenv("S3_BUCKET")),
				Key:         aws.String(uniqueFilename),
				Body:        f,
				ACL:         "public-read",
				ContentType: aws.String(file.Header.Get("Content-Type")),
			})
			f.Close()

			if uploadErr != nil {
				log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
				failedUploads = append(failedUploads, file.Filename)
				continue
			}

			uploadedUrls = append(uploadedUrls, result.Location)
		}

		if len(uploadedUrls) > 0 {
			var imageUrls []string
			if len(product.Images) > 0 {
				if err := json.Unmarshal(product.Images, &imageUrls); err != nil {
					respondWithError(ctx, http.StatusInternalServerError, "Failed to read existing images", err)
					return
				}
			}
			imageUrls = append(imageUrls, uploadedUrls...)

			data, err := json.Marshal(imageUrls)
			if err != nil {
				respondWithError(ctx, http.StatusInternalServerError, "Failed to encode images", err)
				return
			}
			if err := db.Model(&product).Update("images", datatypes.JSON(data)).Error; err != nil {
				respondWithError(ctx, http.StatusInternalServerError, "Failed to save images", err)
				return
			}
		}

		response := gin.H{
			"message": "Files processed",
			"urls":    uploadedUrls,
		}
		if len(failedUploads) > 0 {
			response["failed"] = failedUploads
		}

		ctx.JSON(http.StatusOK, response)
	}
}
