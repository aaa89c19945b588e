package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/models"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

// UpdateProduct rewrites a product row. A non-empty image list replaces the
// whole gallery: prior rows are deleted and the new list inserted in order.
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid product payload: %v", err)
		utils.BadRequest(c, "Title, price and handle are required", err.Error())
		return
	}

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		utils.LogError("Product %d not found: %v", id, err)
		utils.NotFound(c, "Product not found")
		return
	}

	// Handle must stay unique across the other products.
	var conflict models.Product
	if err := config.DB.Where("handle = ? AND id <> ?", req.Handle, id).First(&conflict).Error; err == nil {
		utils.LogError("Duplicate product handle on update: %s", req.Handle)
		utils.BadRequest(c, "A product with this handle already exists", nil)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to update product", nil)
		return
	}

	updates := map[string]interface{}{
		"title":            req.Title,
		"description":      req.Description,
		"price":            req.Price,
		"compare_at_price": req.CompareAtPrice,
		"handle":           req.Handle,
		"sku":              req.SKU,
		"inventory":        req.Inventory,
		"status":           req.Status,
		"featured":         req.Featured,
	}
	if req.Status == "" {
		delete(updates, "status")
	}

	if err := tx.Model(&product).Updates(updates).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update product %d: %v", id, err)
		utils.InternalServerError(c, "Failed to update product", nil)
		return
	}

	if len(req.Images) > 0 {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to clear images for product %d: %v", id, err)
			utils.InternalServerError(c, "Failed to update product images", nil)
			return
		}
		if err := insertProductImages(tx, product.ID, req.Title, req.Images); err != nil {
			tx.Rollback()
			utils.LogError("Failed to insert images for product %d: %v", id, err)
			utils.InternalServerError(c, "Failed to update product images", nil)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit product update %d: %v", id, err)
		utils.InternalServerError(c, "Failed to update product", nil)
		return
	}

	utils.LogInfo("Product %d updated", id)
	utils.Success(c, "Product updated successfully", nil)
}
