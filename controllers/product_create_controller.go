package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/models"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

// ProductRequest represents the create/update payload. Images is the full
// ordered gallery; positions are assigned from the array order.
type ProductRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	Price          float64  `json:"price" binding:"required"`
	CompareAtPrice *float64 `json:"compareAtPrice"`
	Handle         string   `json:"handle" binding:"required"`
	SKU            string   `json:"sku"`
	Inventory      int      `json:"inventory"`
	Status         string   `json:"status"`
	Featured       bool     `json:"featured"`
	Images         []string `json:"images"`
}

// CreateProduct inserts a product and its image gallery
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid product payload: %v", err)
		utils.BadRequest(c, "Title, price and handle are required", err.Error())
		return
	}

	var existing models.Product
	if err := config.DB.Where("handle = ?", req.Handle).First(&existing).Error; err == nil {
		utils.LogError("Duplicate product handle: %s", req.Handle)
		utils.BadRequest(c, "A product with this handle already exists", nil)
		return
	}

	status := req.Status
	if status == "" {
		status = models.ProductStatusActive
	}

	product := models.Product{
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		CompareAtPrice: req.CompareAtPrice,
		Handle:         req.Handle,
		SKU:            req.SKU,
		Inventory:      req.Inventory,
		Status:         status,
		Featured:       req.Featured,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to create product", nil)
		return
	}

	if err := tx.Create(&product).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create product %q: %v", req.Title, err)
		utils.InternalServerError(c, "Failed to create product", nil)
		return
	}

	if err := insertProductImages(tx, product.ID, req.Title, req.Images); err != nil {
		tx.Rollback()
		utils.LogError("Failed to insert images for product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to create product images", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to create product", nil)
		return
	}

	utils.LogInfo("Product %d created", product.ID)
	utils.Created(c, "Product created successfully", gin.H{"productId": product.ID})
}

// insertProductImages writes the gallery with position = index + 1.
func insertProductImages(tx *gorm.DB, productID uint, title string, urls []string) error {
	for i, url := range urls {
		image := models.ProductImage{
			ProductID: productID,
			URL:       url,
			AltText:   fmt.Sprintf("%s - Image %d", title, i+1),
			Position:  i + 1,
		}
		if err := tx.Create(&image).Error; err != nil {
			return err
		}
	}
	return nil
}
