package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/models"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

// DeleteProduct archives a product instead of removing the row, so existing
// order items keep resolving. The image gallery is dropped.
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		utils.LogError("Product %d not found: %v", id, err)
		utils.NotFound(c, "Product not found")
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to delete product", nil)
		return
	}

	if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete images for product %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete product", nil)
		return
	}

	if err := tx.Model(&product).Update("status", models.ProductStatusArchived).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to archive product %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete product", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit product delete %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete product", nil)
		return
	}

	utils.LogInfo("Product %d archived", id)
	utils.Success(c, "Product deleted successfully", nil)
}
