package controllers

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

// ListProductImages returns the public URLs of every uploaded product image
func ListProductImages(c *gin.Context) {
	names, err := utils.ListImageFiles(config.Current().UploadDir)
	if err != nil {
		utils.LogError("Failed to list uploaded images: %v", err)
		utils.InternalServerError(c, "Failed to list images", nil)
		return
	}

	urls := make([]string, 0, len(names))
	for _, name := range names {
		urls = append(urls, "/uploads/products/"+name)
	}

	utils.Success(c, "Images loaded", gin.H{"images": urls})
}

// UploadProductImage stores a multipart image under the upload directory and
// returns its public URL.
func UploadProductImage(c *gin.Context) {
	utils.LogInfo("UploadProductImage called")

	file, err := c.FormFile("image")
	if err != nil {
		utils.BadRequest(c, "An image file is required", err.Error())
		return
	}

	if err := utils.ValidateImageFile(file); err != nil {
		utils.LogError("Rejected upload %s: %v", file.Filename, err)
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	savedName, err := utils.SaveUploadedFile(file, config.Current().UploadDir)
	if err != nil {
		utils.LogError("Failed to save upload %s: %v", file.Filename, err)
		utils.InternalServerError(c, "Failed to save image", nil)
		return
	}

	utils.LogInfo("Stored product image %s", savedName)
	utils.Created(c, "Image uploaded successfully", gin.H{
		"filename": filepath.Base(savedName),
		"url":      "/uploads/products/" + filepath.Base(savedName),
	})
}
