package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Order status values. Fulfilment moves pending → processing → shipped →
// delivered; cancelled is terminal from anywhere.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment status values
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// Address is the structured shipping/billing snapshot persisted on an order
// as serialized JSON.
type Address struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Address1  string `json:"address1,omitempty"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city,omitempty"`
	Zip       string `json:"zip,omitempty"`
	Province  string `json:"province,omitempty"`
	Country   string `json:"country,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Serialize renders the address for storage in the order row.
func (a Address) Serialize() string {
	b, err := json.Marshal(a)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// Lines renders the address as display lines for invoices and emails.
func (a Address) Lines() []string {
	var lines []string
	if name := strings.TrimSpace(a.FirstName + " " + a.LastName); name != "" {
		lines = append(lines, name)
	}
	if a.Address1 != "" {
		line := a.Address1
		if a.Address2 != "" {
			line += ", " + a.Address2
		}
		lines = append(lines, line)
	}
	if city := strings.TrimSpace(a.City + " " + a.Zip); city != "" {
		lines = append(lines, city)
	}
	region := a.Province
	if a.Country != "" {
		if region != "" {
			region += ", "
		}
		region += a.Country
	}
	if region != "" {
		lines = append(lines, region)
	}
	if a.Phone != "" {
		lines = append(lines, "Tel: "+a.Phone)
	}
	return lines
}

// ParseAddress decodes a stored address column. Legacy rows can hold plain
// text; those come back as a single display line instead of failing the read.
func ParseAddress(raw string) Address {
	var addr Address
	if raw == "" {
		return addr
	}
	if err := json.Unmarshal([]byte(raw), &addr); err != nil {
		addr.Address1 = raw
	}
	return addr
}

// Order is a placed purchase with its money breakdown and contact snapshot.
// UserID is nil for guest checkouts. Only status and tracking mutate after
// creation; items are written once with the order.
type Order struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	OrderNumber     string    `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID          *uint     `gorm:"index" json:"user_id,omitempty"`
	User            *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone,omitempty"`
	Subtotal        float64   `json:"subtotal"`
	ShippingCost    float64   `json:"shipping_cost"`
	Tax             float64   `json:"tax"`
	Discount        float64   `json:"discount"`
	CouponCode      string    `json:"coupon_code,omitempty"`
	Total           float64   `json:"total"`
	Status          string    `gorm:"default:pending" json:"status"`
	PaymentStatus   string    `gorm:"default:pending" json:"payment_status"`
	PaymentIntentID string    `gorm:"index" json:"payment_intent_id,omitempty"`
	ShippingAddress string    `json:"shipping_address,omitempty"`
	BillingAddress  string    `json:"billing_address,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	TrackingNumber  string    `json:"tracking_number,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

// OrderItem is a product snapshot frozen at purchase time.
type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"order_id"`
	ProductID    uint    `json:"product_id"`
	ProductTitle string  `json:"product_title"`
	ProductImage string  `json:"product_image"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Subtotal     float64 `json:"subtotal"`
}
