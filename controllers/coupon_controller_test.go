package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidal-dev/ArtisanCart/middleware"
	"github.com/mvidal-dev/ArtisanCart/models"
)

func couponRouter() *gin.Engine {
	router := gin.New()
	router.POST("/coupons/validate", ValidateCoupon)
	router.GET("/coupons/:code", GetCouponByCode)
	router.POST("/coupons", authMW(), middleware.PermissionMiddleware(models.PermCreateCoupons), CreateCoupon)
	router.PATCH("/coupons/:id/toggle", authMW(), middleware.PermissionMiddleware(models.PermEditCoupons), ToggleCoupon)
	return router
}

func TestValidateCouponSuccess(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Coupon{
		Code:          "SAVE10",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 10,
		IsPermanent:   true,
		IsActive:      true,
	}).Error)
	router := couponRouter()

	w := performAuthed(router, jsonRequest(http.MethodPost, "/coupons/validate", ValidateCouponRequest{Code: "save10", Total: 100}), "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["valid"])
	assert.InDelta(t, 10.0, data["discount"].(float64), 0.001)
}

func TestValidateCouponUnknownCode(t *testing.T) {
	setupTestDB(t)
	router := couponRouter()

	w := performAuthed(router, jsonRequest(http.MethodPost, "/coupons/validate", ValidateCouponRequest{Code: "NOPE", Total: 50}), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidateCouponBelowMinimum(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Coupon{
		Code:              "BIG20",
		DiscountType:      models.DiscountTypeFixed,
		DiscountValue:     20,
		MinPurchaseAmount: 50,
		IsPermanent:       true,
		IsActive:          true,
	}).Error)
	router := couponRouter()

	w := performAuthed(router, jsonRequest(http.MethodPost, "/coupons/validate", ValidateCouponRequest{Code: "BIG20", Total: 10}), "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["valid"])
}

func TestValidateCouponExpired(t *testing.T) {
	db := setupTestDB(t)
	start := time.Now().Add(-48 * time.Hour)
	end := time.Now().Add(-24 * time.Hour)
	require.NoError(t, db.Create(&models.Coupon{
		Code:          "OLD",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 10,
		StartDate:     &start,
		EndDate:       &end,
		IsActive:      true,
	}).Error)
	router := couponRouter()

	w := performAuthed(router, jsonRequest(http.MethodPost, "/coupons/validate", ValidateCouponRequest{Code: "OLD", Total: 100}), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateCouponInactive(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Coupon{
		Code:          "DISABLED",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 10,
		IsPermanent:   true,
		IsActive:      false,
	}).Error)
	router := couponRouter()

	// Deactivated coupons look exactly like unknown codes
	w := performAuthed(router, jsonRequest(http.MethodPost, "/coupons/validate", ValidateCouponRequest{Code: "DISABLED", Total: 100}), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCouponUppercasesCode(t *testing.T) {
	db := setupTestDB(t)
	_, token := createTestUser(t, db, "admin@example.com", models.RoleAdmin, models.Permissions{})
	router := couponRouter()

	payload := CouponRequest{
		Code:          "spring15",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 15,
		IsPermanent:   true,
	}
	w := performAuthed(router, jsonRequest(http.MethodPost, "/coupons", payload), token)
	require.Equal(t, http.StatusCreated, w.Code)

	var coupon models.Coupon
	require.NoError(t, db.Where("code = ?", "SPRING15").First(&coupon).Error)
	assert.True(t, coupon.IsActive)
}

func TestEmployeePermissionMatrix(t *testing.T) {
	db := setupTestDB(t)
	_, token := createTestUser(t, db, "employee@example.com", models.RoleEmployee, models.Permissions{
		CanViewOrders: true,
	})

	router := gin.New()
	router.GET("/orders", authMW(), middleware.PermissionMiddleware(models.PermViewOrders), ListOrders)
	router.POST("/coupons", authMW(), middleware.PermissionMiddleware(models.PermCreateCoupons), CreateCoupon)

	// Granted flag passes
	w := performAuthed(router, jsonRequest(http.MethodGet, "/orders", nil), token)
	assert.Equal(t, http.StatusOK, w.Code)

	// Missing flag is refused and names the flag it needed
	payload := CouponRequest{Code: "X", DiscountType: models.DiscountTypeFixed, DiscountValue: 5, IsPermanent: true}
	w = performAuthed(router, jsonRequest(http.MethodPost, "/coupons", payload), token)
	require.Equal(t, http.StatusForbidden, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, models.PermCreateCoupons, body["requiredPermission"])
}
