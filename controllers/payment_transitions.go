package controllers

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mvidal-dev/ArtisanCart/models"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

// ErrOrderNotFound is returned when a payment event references an intent no
// order was recorded for.
var ErrOrderNotFound = errors.New("order not found for payment intent")

// ApplyPaymentSucceeded marks the order paid and starts fulfilment. It is
// called from both the confirm endpoint and the webhook handler, so it must
// converge: re-applying it to an already paid order changes nothing. The
// returned flag tells the caller whether this call performed the transition,
// so confirmation emails go out exactly once.
func ApplyPaymentSucceeded(db *gorm.DB, paymentIntentID string) (models.Order, bool, error) {
	var order models.Order
	if err := db.Preload("Items").Where("payment_intent_id = ?", paymentIntentID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, false, ErrOrderNotFound
		}
		return models.Order{}, false, err
	}

	if order.PaymentStatus == models.PaymentStatusPaid {
		utils.LogDebug("Payment for %s already recorded, skipping", order.OrderNumber)
		return order, false, nil
	}

	updates := map[string]interface{}{
		"payment_status": models.PaymentStatusPaid,
		"status":         models.OrderStatusProcessing,
	}
	if err := db.Model(&order).Updates(updates).Error; err != nil {
		return models.Order{}, false, err
	}
	order.PaymentStatus = models.PaymentStatusPaid
	order.Status = models.OrderStatusProcessing

	utils.LogInfo("Order %s marked paid", order.OrderNumber)
	return order, true, nil
}

// ApplyPaymentFailed records a failed charge. The fulfilment status is left
// alone so a retried payment on the same intent can still succeed.
func ApplyPaymentFailed(db *gorm.DB, paymentIntentID string) (models.Order, error) {
	var order models.Order
	if err := db.Where("payment_intent_id = ?", paymentIntentID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrOrderNotFound
		}
		return models.Order{}, err
	}

	if order.PaymentStatus == models.PaymentStatusPaid {
		utils.LogError("Ignoring failure event for already paid order %s", order.OrderNumber)
		return order, nil
	}
	if order.PaymentStatus == models.PaymentStatusFailed {
		return order, nil
	}

	if err := db.Model(&order).Update("payment_status", models.PaymentStatusFailed).Error; err != nil {
		return models.Order{}, err
	}
	order.PaymentStatus = models.PaymentStatusFailed

	utils.LogInfo("Order %s marked failed", order.OrderNumber)
	return order, nil
}
