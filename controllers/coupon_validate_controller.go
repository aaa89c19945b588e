package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/models"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

// ValidateCouponRequest represents the validation payload
type ValidateCouponRequest struct {
	Code  string  `json:"code" binding:"required"`
	Total float64 `json:"total"`
}

// ValidateCoupon checks a code against a candidate purchase total and returns
// the discount it would grant. Validation never increments the usage counter.
func ValidateCoupon(c *gin.Context) {
	utils.LogInfo("ValidateCoupon called")

	var req ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid coupon validation payload: %v", err)
		utils.BadRequest(c, "Coupon code is required", err.Error())
		return
	}

	code := strings.ToUpper(req.Code)

	var coupon models.Coupon
	if err := config.DB.Where("code = ? AND is_active = ?", code, true).First(&coupon).Error; err != nil {
		utils.LogError("Coupon %s not found or inactive", code)
		utils.NotFound(c, "Invalid coupon")
		return
	}

	discount, err := coupon.EvaluateAt(req.Total, time.Now())
	if err != nil {
		utils.LogError("Coupon %s rejected for total %.2f: %v", code, req.Total, err)
		c.JSON(400, gin.H{
			"status":  "error",
			"message": couponFailureMessage(err),
			"valid":   false,
		})
		return
	}

	utils.LogInfo("Coupon %s valid for total %.2f, discount %.2f", code, req.Total, discount)
	utils.Success(c, "Coupon is valid", gin.H{
		"valid":    true,
		"discount": discount,
		"coupon": gin.H{
			"code":          coupon.Code,
			"discountType":  coupon.DiscountType,
			"discountValue": coupon.DiscountValue,
		},
	})
}

func couponFailureMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrCouponNotYetActive):
		return "Coupon is not yet active"
	case errors.Is(err, models.ErrCouponExpired):
		return "Coupon has expired"
	case errors.Is(err, models.ErrCouponBelowMinimum):
		return "Purchase total does not reach the coupon minimum"
	case errors.Is(err, models.ErrCouponUsageLimit):
		return "Coupon has reached its usage limit"
	}
	return "Coupon cannot be applied"
}
