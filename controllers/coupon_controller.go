package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/models"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

// CouponRequest represents the create/update payload
type CouponRequest struct {
	Code              string     `json:"code"`
	DiscountType      string     `json:"discountType" binding:"required"`
	DiscountValue     float64    `json:"discountValue" binding:"required"`
	MinPurchaseAmount float64    `json:"minPurchaseAmount"`
	MaxUses           *int       `json:"maxUses"`
	IsPermanent       bool       `json:"isPermanent"`
	StartDate         *time.Time `json:"startDate"`
	EndDate           *time.Time `json:"endDate"`
}

// ListCoupons returns every coupon, newest first
func ListCoupons(c *gin.Context) {
	utils.LogInfo("ListCoupons called")

	var coupons []models.Coupon
	if err := config.DB.Order("created_at DESC").Find(&coupons).Error; err != nil {
		utils.LogError("Failed to fetch coupons: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", nil)
		return
	}

	utils.Success(c, "Coupons loaded", gin.H{"coupons": coupons})
}

// GetCouponByCode returns an active coupon by its code
func GetCouponByCode(c *gin.Context) {
	utils.LogInfo("GetCouponByCode called")

	code := strings.ToUpper(c.Param("code"))

	var coupon models.Coupon
	if err := config.DB.Where("code = ? AND is_active = ?", code, true).First(&coupon).Error; err != nil {
		utils.LogError("Coupon %s not found: %v", code, err)
		utils.NotFound(c, "Coupon not found")
		return
	}

	utils.Success(c, "Coupon loaded", gin.H{"coupon": coupon})
}

// CreateCoupon inserts a coupon; codes are stored uppercase and must be unique
func CreateCoupon(c *gin.Context) {
	utils.LogInfo("CreateCoupon called")

	user, _ := requestUser(c)

	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid coupon payload: %v", err)
		utils.BadRequest(c, "Code, discount type and discount value are required", err.Error())
		return
	}

	if req.Code == "" {
		utils.BadRequest(c, "Code, discount type and discount value are required", nil)
		return
	}

	code := strings.ToUpper(req.Code)

	var existing models.Coupon
	if err := config.DB.Where("code = ?", code).First(&existing).Error; err == nil {
		utils.LogError("Duplicate coupon code: %s", code)
		utils.BadRequest(c, "Coupon code already exists", nil)
		return
	}

	coupon := models.Coupon{
		Code:              code,
		DiscountType:      req.DiscountType,
		DiscountValue:     req.DiscountValue,
		MinPurchaseAmount: req.MinPurchaseAmount,
		MaxUses:           req.MaxUses,
		IsPermanent:       req.IsPermanent,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		IsActive:          true,
		CreatedBy:         user.ID,
	}
	if err := config.DB.Create(&coupon).Error; err != nil {
		utils.LogError("Failed to create coupon %s: %v", code, err)
		utils.InternalServerError(c, "Failed to create coupon", nil)
		return
	}

	utils.LogInfo("Coupon %s created", code)
	utils.Created(c, "Coupon created successfully", gin.H{"coupon": coupon})
}

// UpdateCoupon rewrites a coupon's terms; the code itself is immutable
func UpdateCoupon(c *gin.Context) {
	utils.LogInfo("UpdateCoupon called")

	coupon, ok := findCouponParam(c)
	if !ok {
		return
	}

	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid coupon payload for %d: %v", coupon.ID, err)
		utils.BadRequest(c, "Discount type and discount value are required", err.Error())
		return
	}

	updates := map[string]interface{}{
		"discount_type":       req.DiscountType,
		"discount_value":      req.DiscountValue,
		"min_purchase_amount": req.MinPurchaseAmount,
		"max_uses":            req.MaxUses,
		"is_permanent":        req.IsPermanent,
		"start_date":          req.StartDate,
		"end_date":            req.EndDate,
	}
	if err := config.DB.Model(&coupon).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update coupon %d: %v", coupon.ID, err)
		utils.InternalServerError(c, "Failed to update coupon", nil)
		return
	}

	utils.LogInfo("Coupon %d updated", coupon.ID)
	utils.Success(c, "Coupon updated successfully", nil)
}

// ToggleCouponRequest carries the target active flag
type ToggleCouponRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// ToggleCoupon activates or deactivates a coupon
func ToggleCoupon(c *gin.Context) {
	utils.LogInfo("ToggleCoupon called")

	coupon, ok := findCouponParam(c)
	if !ok {
		return
	}

	var req ToggleCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid toggle payload for coupon %d: %v", coupon.ID, err)
		utils.BadRequest(c, "isActive is required", err.Error())
		return
	}

	if err := config.DB.Model(&coupon).Update("is_active", *req.IsActive).Error; err != nil {
		utils.LogError("Failed to toggle coupon %d: %v", coupon.ID, err)
		utils.InternalServerError(c, "Failed to update coupon", nil)
		return
	}

	message := "Coupon deactivated successfully"
	if *req.IsActive {
		message = "Coupon activated successfully"
	}
	utils.Success(c, message, nil)
}

// DeleteCoupon removes a coupon
func DeleteCoupon(c *gin.Context) {
	utils.LogInfo("DeleteCoupon called")

	coupon, ok := findCouponParam(c)
	if !ok {
		return
	}

	if err := config.DB.Delete(&coupon).Error; err != nil {
		utils.LogError("Failed to delete coupon %d: %v", coupon.ID, err)
		utils.InternalServerError(c, "Failed to delete coupon", nil)
		return
	}

	utils.LogInfo("Coupon %d deleted", coupon.ID)
	utils.Success(c, "Coupon deleted successfully", nil)
}

func findCouponParam(c *gin.Context) (models.Coupon, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid coupon ID", nil)
		return models.Coupon{}, false
	}

	var coupon models.Coupon
	if err := config.DB.First(&coupon, id).Error; err != nil {
		utils.NotFound(c, "Coupon not found")
		return models.Coupon{}, false
	}
	return coupon, true
}
