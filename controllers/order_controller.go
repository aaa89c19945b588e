package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/models"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

// OrderItemRequest is one cart line in a checkout payload
type OrderItemRequest struct {
	ProductID uint    `json:"productId" binding:"required"`
	Title     string  `json:"title" binding:"required"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price"`
}

// CreateOrderRequest represents a direct (non-card) checkout
type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	CustomerEmail   string             `json:"customerEmail" binding:"required,email"`
	CustomerName    string             `json:"customerName" binding:"required"`
	CustomerPhone   string             `json:"customerPhone"`
	ShippingAddress models.Address     `json:"shippingAddress"`
	BillingAddress  models.Address     `json:"billingAddress"`
	CouponCode      string             `json:"couponCode"`
	Discount        float64            `json:"discount"`
	ShippingCost    float64            `json:"shippingCost"`
	Tax             float64            `json:"tax"`
	Notes           string             `json:"notes"`
}

func buildOrderItems(items []OrderItemRequest) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, models.OrderItem{
			ProductID:    item.ProductID,
			ProductTitle: item.Title,
			ProductImage: item.Image,
			Quantity:     item.Quantity,
			Price:        item.Price,
		})
	}
	return out
}

// CreateOrder places an order without card payment. The order starts as
// pending/pending; subtotal and total are derived from the items so the money
// breakdown always balances.
func CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid order payload: %v", err)
		utils.BadRequest(c, "Items and customer contact details are required", err.Error())
		return
	}

	items := buildOrderItems(req.Items)
	subtotal, total := utils.ComputeOrderAmounts(items, req.Discount, req.ShippingCost, req.Tax)

	order := models.Order{
		OrderNumber:     utils.GenerateOrderNumber(),
		UserID:          requestUserID(c),
		CustomerEmail:   req.CustomerEmail,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		Subtotal:        subtotal,
		ShippingCost:    req.ShippingCost,
		Tax:             req.Tax,
		Discount:        req.Discount,
		CouponCode:      req.CouponCode,
		Total:           total,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		ShippingAddress: req.ShippingAddress.Serialize(),
		BillingAddress:  req.BillingAddress.Serialize(),
		Notes:           req.Notes,
		Items:           items,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		utils.LogError("Failed to create order: %v", err)
		utils.InternalServerError(c, "Failed to create order", nil)
		return
	}

	utils.LogInfo("Order %s created with %d items", order.OrderNumber, len(items))
	utils.Created(c, "Order created successfully", gin.H{
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
	})
}

// ListUserOrders returns the caller's orders, newest first
func ListUserOrders(c *gin.Context) {
	utils.LogInfo("ListUserOrders called")

	user, ok := requestUser(c)
	if !ok {
		utils.Unauthorized(c, "Not authenticated")
		return
	}

	var orders []models.Order
	if err := config.DB.Preload("Items").Where("user_id = ?", user.ID).Order("created_at DESC").Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	utils.Success(c, "Orders loaded", gin.H{"orders": orders})
}

// ListOrders returns every order for back-office views
func ListOrders(c *gin.Context) {
	utils.LogInfo("ListOrders called")

	var orders []models.Order
	if err := config.DB.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	utils.Success(c, "Orders loaded", gin.H{"orders": orders})
}

// GetOrderDetails returns one order with its items. Customers only see their
// own orders; staff with order visibility see everything.
func GetOrderDetails(c *gin.Context) {
	utils.LogInfo("GetOrderDetails called")

	user, ok := requestUser(c)
	if !ok {
		utils.Unauthorized(c, "Not authenticated")
		return
	}

	order, found := findOrderForViewer(c, user)
	if !found {
		return
	}

	utils.Success(c, "Order loaded", gin.H{"order": order})
}

// Fulfilment is linear; cancellation is terminal and reachable from anywhere.
var orderStatusRank = map[string]int{
	models.OrderStatusPending:    0,
	models.OrderStatusProcessing: 1,
	models.OrderStatusShipped:    2,
	models.OrderStatusDelivered:  3,
}

// UpdateOrderStatusRequest carries the fulfilment mutation
type UpdateOrderStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	TrackingNumber string `json:"trackingNumber"`
}

// UpdateOrderStatus moves an order along the fulfilment chain and records the
// tracking number.
func UpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("UpdateOrderStatus called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid status payload for order %d: %v", id, err)
		utils.BadRequest(c, "Status is required", err.Error())
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		utils.LogError("Order %d not found: %v", id, err)
		utils.NotFound(c, "Order not found")
		return
	}

	if !statusTransitionAllowed(order.Status, req.Status) {
		utils.LogError("Rejected status transition %s -> %s for order %d", order.Status, req.Status, id)
		utils.BadRequest(c, "Invalid status transition", gin.H{
			"from": order.Status,
			"to":   req.Status,
		})
		return
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.TrackingNumber != "" {
		updates["tracking_number"] = req.TrackingNumber
	}
	if err := config.DB.Model(&order).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update order %d: %v", id, err)
		utils.InternalServerError(c, "Failed to update order", nil)
		return
	}

	utils.LogInfo("Order %d moved to %s", id, req.Status)
	utils.Success(c, "Order status updated successfully", nil)
}

func statusTransitionAllowed(from, to string) bool {
	if from == models.OrderStatusCancelled {
		return false
	}
	if to == models.OrderStatusCancelled {
		return true
	}
	fromRank, okFrom := orderStatusRank[from]
	toRank, okTo := orderStatusRank[to]
	return okFrom && okTo && toRank >= fromRank
}

func findOrderForViewer(c *gin.Context, user models.User) (models.Order, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return models.Order{}, false
	}

	var order models.Order
	query := config.DB.Preload("Items")
	if !canViewAnyOrder(user) {
		query = query.Where("user_id = ?", user.ID)
	}
	if err := query.First(&order, id).Error; err != nil {
		utils.LogError("Order %d not found for user %d: %v", id, user.ID, err)
		utils.NotFound(c, "Order not found")
		return models.Order{}, false
	}
	return order, true
}
