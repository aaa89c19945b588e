package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidal-dev/ArtisanCart/middleware"
	"github.com/mvidal-dev/ArtisanCart/models"
)

func reportRouter() *gin.Engine {
	router := gin.New()
	router.GET("/orders/export", authMW(), middleware.PermissionMiddleware(models.PermViewAnalytics), ExportOrdersExcel)
	return router
}

func TestExportOrdersExcel(t *testing.T) {
	db := setupTestDB(t)
	_, token := createTestUser(t, db, "analyst@example.com", models.RoleEmployee, models.Permissions{CanViewAnalytics: true})

	require.NoError(t, db.Create(&models.Order{
		OrderNumber:   "ORD-EXPORT",
		CustomerEmail: "buyer@example.com",
		CustomerName:  "Buyer",
		Subtotal:      20,
		Total:         20,
		PaymentStatus: models.PaymentStatusPaid,
		Items: []models.OrderItem{
			{ProductTitle: "Mug", Quantity: 2, Price: 10, Subtotal: 20},
		},
	}).Error)
	router := reportRouter()

	w := performAuthed(router, jsonRequest(http.MethodGet, "/orders/export?period=day", nil), token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "orders_report_day.xlsx")
	assert.NotZero(t, w.Body.Len())
}

func TestExportOrdersExcelInvalidPeriod(t *testing.T) {
	db := setupTestDB(t)
	_, token := createTestUser(t, db, "analyst@example.com", models.RoleEmployee, models.Permissions{CanViewAnalytics: true})
	router := reportRouter()

	w := performAuthed(router, jsonRequest(http.MethodGet, "/orders/export?period=year", nil), token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportOrdersExcelRequiresAnalytics(t *testing.T) {
	db := setupTestDB(t)
	_, token := createTestUser(t, db, "staff@example.com", models.RoleEmployee, models.Permissions{CanViewOrders: true})
	router := reportRouter()

	w := performAuthed(router, jsonRequest(http.MethodGet, "/orders/export?period=day", nil), token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
