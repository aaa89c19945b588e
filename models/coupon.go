package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Coupon discount types
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Coupon validation failures. Handlers map these to 400 responses.
var (
	ErrCouponNotYetActive  = errors.New("coupon is not yet active")
	ErrCouponExpired       = errors.New("coupon has expired")
	ErrCouponUsageLimit    = errors.New("coupon has reached its usage limit")
	ErrCouponBelowMinimum  = errors.New("minimum purchase not reached")
	ErrUnknownDiscountType = errors.New("unknown discount type")
)

type Coupon struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Code              string         `gorm:"uniqueIndex;not null" json:"code"`
	DiscountType      string         `json:"discount_type"`
	DiscountValue     float64        `json:"discount_value"`
	MinPurchaseAmount float64        `json:"min_purchase_amount"`
	MaxUses           *int           `json:"max_uses,omitempty"`
	CurrentUses       int            `json:"current_uses"`
	IsPermanent       bool           `json:"is_permanent"`
	StartDate         *time.Time     `json:"start_date,omitempty"`
	EndDate           *time.Time     `json:"end_date,omitempty"`
	IsActive          bool           `gorm:"default:true" json:"is_active"`
	CreatedBy         uint           `json:"created_by"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// EvaluateAt checks the coupon against a purchase total at the given instant
// and returns the discount amount. It reads CurrentUses but never writes it;
// usage counting is not wired to order creation.
func (c *Coupon) EvaluateAt(total float64, now time.Time) (float64, error) {
	if !c.IsPermanent {
		if c.StartDate != nil && now.Before(*c.StartDate) {
			return 0, ErrCouponNotYetActive
		}
		if c.EndDate != nil && now.After(*c.EndDate) {
			return 0, ErrCouponExpired
		}
	}

	if total < c.MinPurchaseAmount {
		return 0, fmt.Errorf("%w: minimum purchase is %.2f", ErrCouponBelowMinimum, c.MinPurchaseAmount)
	}

	if c.MaxUses != nil && c.CurrentUses >= *c.MaxUses {
		return 0, ErrCouponUsageLimit
	}

	switch c.DiscountType {
	case DiscountTypePercentage:
		return total * c.DiscountValue / 100, nil
	case DiscountTypeFixed:
		// Not clamped to the total; a fixed value above the total passes
		// through as-is.
		return c.DiscountValue, nil
	}
	return 0, ErrUnknownDiscountType
}
