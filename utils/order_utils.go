package utils

import (
	"fmt"
	"math"
	"time"

	"github.com/mvidal-dev/ArtisanCart/models"
)

// GenerateOrderNumber produces the human-readable order identifier.
func GenerateOrderNumber() string {
	return fmt.Sprintf("ORD-%d", time.Now().UnixMilli())
}

// Round2 rounds a money amount to two decimal places.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// ComputeOrderAmounts derives the money breakdown for an order. Line subtotals
// and the order subtotal come from the items; the grand total satisfies
// total = subtotal - discount + shipping + tax. The items slice is updated in
// place with the computed line subtotals.
func ComputeOrderAmounts(items []models.OrderItem, discount, shippingCost, tax float64) (subtotal, total float64) {
	for i := range items {
		items[i].Subtotal = Round2(items[i].Price * float64(items[i].Quantity))
		subtotal += items[i].Subtotal
	}
	subtotal = Round2(subtotal)
	total = Round2(subtotal - discount + shippingCost + tax)
	return subtotal, total
}
