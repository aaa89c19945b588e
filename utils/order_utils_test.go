package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvidal-dev/ArtisanCart/models"
)

func TestComputeOrderAmounts(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: 1, Quantity: 2, Price: 10.00},
		{ProductID: 2, Quantity: 1, Price: 5.00},
	}

	subtotal, total := ComputeOrderAmounts(items, 0, 5.99, 4.41)

	assert.InDelta(t, 25.00, subtotal, 0.001)
	assert.InDelta(t, 35.40, total, 0.001)
	assert.InDelta(t, 20.00, items[0].Subtotal, 0.001)
	assert.InDelta(t, 5.00, items[1].Subtotal, 0.001)
}

func TestComputeOrderAmountsWithDiscount(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: 1, Quantity: 1, Price: 100.00},
	}

	subtotal, total := ComputeOrderAmounts(items, 10, 0, 0)

	assert.InDelta(t, 100.00, subtotal, 0.001)
	assert.InDelta(t, 90.00, total, 0.001)
}

func TestComputeOrderAmountsEmpty(t *testing.T) {
	subtotal, total := ComputeOrderAmounts(nil, 0, 4.99, 0)

	assert.Zero(t, subtotal)
	assert.InDelta(t, 4.99, total, 0.001)
}

func TestGenerateOrderNumber(t *testing.T) {
	number := GenerateOrderNumber()
	assert.True(t, strings.HasPrefix(number, "ORD-"))
	assert.Greater(t, len(number), len("ORD-"))
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 10.56, Round2(10.556), 0.001)
	assert.InDelta(t, 10.55, Round2(10.554), 0.001)
}
