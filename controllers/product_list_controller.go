package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/models"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

// GetProducts lists every non-archived product with its ordered images
func GetProducts(c *gin.Context) {
	utils.LogInfo("GetProducts called")

	var products []models.Product
	err := config.DB.
		Where("status <> ?", models.ProductStatusArchived).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", nil)
		return
	}

	utils.Success(c, "Products loaded", gin.H{"products": products})
}

// GetProductByID returns one product, archived included, with ordered images
func GetProductByID(c *gin.Context) {
	utils.LogInfo("GetProductByID called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	err = config.DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&product, id).Error
	if err != nil {
		utils.LogError("Product %d not found: %v", id, err)
		utils.NotFound(c, "Product not found")
		return
	}

	utils.Success(c, "Product loaded", gin.H{"product": product})
}

// GetProductByHandle resolves a product by its URL slug
func GetProductByHandle(c *gin.Context) {
	utils.LogInfo("GetProductByHandle called")

	handle := c.Param("handle")

	var product models.Product
	err := config.DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("handle = ?", handle).
		First(&product).Error
	if err != nil {
		utils.LogError("Product with handle %q not found: %v", handle, err)
		utils.NotFound(c, "Product not found")
		return
	}

	utils.Success(c, "Product loaded", gin.H{"product": product})
}
