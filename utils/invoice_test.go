package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidal-dev/ArtisanCart/models"
)

func sampleOrder() (models.Order, []models.OrderItem) {
	createdAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	shipping := models.Address{
		FirstName: "Maria",
		LastName:  "Lopez",
		Address1:  "Calle Mayor 12",
		City:      "Madrid",
		Zip:       "28013",
		Country:   "ES",
	}

	order := models.Order{
		ID:              42,
		OrderNumber:     "ORD-1741598400000",
		CustomerEmail:   "maria@example.com",
		CustomerName:    "Maria Lopez",
		Subtotal:        25.00,
		ShippingCost:    5.99,
		Tax:             4.41,
		Discount:        0,
		Total:           35.40,
		Status:          models.OrderStatusProcessing,
		PaymentStatus:   models.PaymentStatusPaid,
		ShippingAddress: shipping.Serialize(),
		BillingAddress:  shipping.Serialize(),
		CreatedAt:       createdAt,
	}
	items := []models.OrderItem{
		{ProductTitle: "Ceramic Mug", Quantity: 2, Price: 10.00, Subtotal: 20.00},
		{ProductTitle: "Coaster Set", Quantity: 1, Price: 5.00, Subtotal: 5.00},
	}
	return order, items
}

func TestBuildInvoicePDFProducesDocument(t *testing.T) {
	order, items := sampleOrder()

	pdfBytes, err := BuildInvoicePDF(order, items)
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestBuildInvoicePDFDeterministic(t *testing.T) {
	order, items := sampleOrder()

	first, err := BuildInvoicePDF(order, items)
	require.NoError(t, err)
	second, err := BuildInvoicePDF(order, items)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildInvoicePDFWithDiscountLine(t *testing.T) {
	order, items := sampleOrder()
	order.Discount = 5.00
	order.Total = 30.40

	withDiscount, err := BuildInvoicePDF(order, items)
	require.NoError(t, err)

	order.Discount = 0
	order.Total = 35.40
	withoutDiscount, err := BuildInvoicePDF(order, items)
	require.NoError(t, err)

	assert.NotEqual(t, withDiscount, withoutDiscount)
}

func TestBuildInvoicePDFManyItemsPaginates(t *testing.T) {
	order, _ := sampleOrder()

	var items []models.OrderItem
	for i := 0; i < 60; i++ {
		items = append(items, models.OrderItem{
			ProductTitle: "Handmade Item",
			Quantity:     1,
			Price:        3.50,
			Subtotal:     3.50,
		})
	}

	pdfBytes, err := BuildInvoicePDF(order, items)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}
