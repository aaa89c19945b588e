package controllers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/models"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

// CreatePaymentIntentRequest is a card checkout: the cart plus the amount to
// charge in the currency's minor unit (cents).
type CreatePaymentIntentRequest struct {
	Amount          int64              `json:"amount" binding:"required,min=1"`
	Currency        string             `json:"currency"`
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

// CreatePaymentIntent registers the charge with Stripe and records the order
// as pending against the intent ID, so later events can find it.
func CreatePaymentIntent(c *gin.Context) {
	utils.LogInfo("CreatePaymentIntent called")

	var req CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid payment payload: %v", err)
		utils.BadRequest(c, "Amount, items and customer contact details are required", err.Error())
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "eur"
	}

	orderNumber := utils.GenerateOrderNumber()
	userID := requestUserID(c)
	userMeta := "guest"
	if userID != nil {
		userMeta = fmt.Sprintf("%d", *userID)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("orderNumber", orderNumber)
	params.AddMetadata("userId", userMeta)
	params.AddMetadata("customerEmail", req.CustomerEmail)

	intent, err := paymentintent.New(params)
	if err != nil {
		utils.LogError("Stripe payment intent creation failed: %v", err)
		utils.InternalServerError(c, "Failed to initialize payment", nil)
		return
	}

	items := buildOrderItems(req.Items)
	subtotal, total := utils.ComputeOrderAmounts(items, req.Discount, req.ShippingCost, req.Tax)

	order := models.Order{
		OrderNumber:     orderNumber,
		UserID:          userID,
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
		PaymentIntentID: intent.ID,
		ShippingAddress: req.ShippingAddress.Serialize(),
		BillingAddress:  req.BillingAddress.Serialize(),
		Notes:           req.Notes,
		Items:           items,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		utils.LogError("Failed to record order for intent %s: %v", intent.ID, err)
		utils.InternalServerError(c, "Failed to create order", nil)
		return
	}

	utils.LogInfo("Payment intent %s created for order %s", intent.ID, orderNumber)
	utils.Success(c, "Payment initialized", gin.H{
		"clientSecret": intent.ClientSecret,
		"orderId":      order.ID,
		"orderNumber":  order.OrderNumber,
	})
}

// ConfirmPaymentRequest names the intent the storefront just completed
type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
}

// ConfirmPayment re-checks the intent with Stripe and applies the outcome.
// The webhook applies the same transition, so whichever arrives first wins
// and the other is a no-op.
func ConfirmPayment(c *gin.Context) {
	utils.LogInfo("ConfirmPayment called")

	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Payment intent ID is required", err.Error())
		return
	}

	intent, err := paymentintent.Get(req.PaymentIntentID, nil)
	if err != nil {
		utils.LogError("Failed to fetch intent %s: %v", req.PaymentIntentID, err)
		utils.InternalServerError(c, "Failed to verify payment", nil)
		return
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		utils.LogInfo("Intent %s not settled yet (%s)", intent.ID, intent.Status)
		c.JSON(200, gin.H{
			"status":        "success",
			"message":       "Payment has not succeeded yet",
			"success":       false,
			"paymentStatus": string(intent.Status),
		})
		return
	}

	order, transitioned, err := ApplyPaymentSucceeded(config.DB, intent.ID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			utils.NotFound(c, "Order not found")
			return
		}
		utils.LogError("Failed to apply payment for intent %s: %v", intent.ID, err)
		utils.InternalServerError(c, "Failed to update order", nil)
		return
	}

	if transitioned {
		go sendOrderConfirmation(order)
	}

	utils.Success(c, "Payment confirmed", gin.H{
		"orderId":       order.ID,
		"orderNumber":   order.OrderNumber,
		"status":        order.Status,
		"paymentStatus": order.PaymentStatus,
	})
}

// GetPaymentStatus exposes a small projection of the order keyed by intent,
// for the storefront's return page polling.
func GetPaymentStatus(c *gin.Context) {
	intentID := c.Param("paymentIntentId")

	var order models.Order
	if err := config.DB.Where("payment_intent_id = ?", intentID).First(&order).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	utils.Success(c, "Payment status", gin.H{
		"orderNumber":   order.OrderNumber,
		"status":        order.Status,
		"paymentStatus": order.PaymentStatus,
		"total":         order.Total,
	})
}

// HandleStripeWebhook verifies the event signature against the raw body and
// applies payment transitions. Unknown event types are acknowledged so Stripe
// stops retrying them.
func HandleStripeWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		utils.LogError("Failed to read webhook body: %v", err)
		utils.BadRequest(c, "Invalid payload", nil)
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), config.Current().StripeWebhookSecret)
	if err != nil {
		utils.LogError("Webhook signature verification failed: %v", err)
		utils.BadRequest(c, "Invalid signature", nil)
		return
	}

	switch event.Type {
	case "payment_intent.succeeded":
		intent, err := intentFromEvent(event)
		if err != nil {
			utils.LogError("Malformed succeeded event %s: %v", event.ID, err)
			utils.BadRequest(c, "Invalid event payload", nil)
			return
		}
		order, transitioned, err := ApplyPaymentSucceeded(config.DB, intent.ID)
		if err != nil && !errors.Is(err, ErrOrderNotFound) {
			utils.LogError("Failed to apply webhook payment for %s: %v", intent.ID, err)
			utils.InternalServerError(c, "Failed to update order", nil)
			return
		}
		if transitioned {
			go sendOrderConfirmation(order)
		}
	case "payment_intent.payment_failed":
		intent, err := intentFromEvent(event)
		if err != nil {
			utils.LogError("Malformed failed event %s: %v", event.ID, err)
			utils.BadRequest(c, "Invalid event payload", nil)
			return
		}
		if _, err := ApplyPaymentFailed(config.DB, intent.ID); err != nil && !errors.Is(err, ErrOrderNotFound) {
			utils.LogError("Failed to record payment failure for %s: %v", intent.ID, err)
			utils.InternalServerError(c, "Failed to update order", nil)
			return
		}
	default:
		utils.LogDebug("Ignoring webhook event type %s", event.Type)
	}

	c.JSON(200, gin.H{"received": true})
}

func intentFromEvent(event stripe.Event) (stripe.PaymentIntent, error) {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return stripe.PaymentIntent{}, err
	}
	return intent, nil
}

// sendOrderConfirmation emails the receipt with the invoice attached. The
// invoice is best effort: a render failure still sends the plain email.
func sendOrderConfirmation(order models.Order) {
	pdfBytes, err := utils.BuildInvoicePDF(order, order.Items)
	if err != nil {
		utils.LogError("Invoice render failed for order %s, sending without attachment: %v", order.OrderNumber, err)
		pdfBytes = nil
	}
	if err := utils.SendOrderConfirmation(order.CustomerEmail, order.OrderNumber, order.Total, pdfBytes); err != nil {
		utils.LogError("Failed to send confirmation for order %s: %v", order.OrderNumber, err)
	}
}
