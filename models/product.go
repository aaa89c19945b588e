package models

import (
	"time"
)

// Product status values
const (
	ProductStatusActive   = "active"
	ProductStatusDraft    = "draft"
	ProductStatusArchived = "archived"
)

// Product represents an item in the catalog. Deletion archives the row so
// order history keeps resolving.
type Product struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	CompareAtPrice *float64       `json:"compare_at_price,omitempty"`
	Handle         string         `gorm:"uniqueIndex;not null" json:"handle"`
	SKU            string         `json:"sku"`
	Inventory      int            `json:"inventory"`
	Status         string         `gorm:"default:active" json:"status"`
	Featured       bool           `gorm:"default:false" json:"featured"`
	Images         []ProductImage `json:"images" gorm:"foreignKey:ProductID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// ProductImage is one entry of a product's ordered gallery.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	URL       string `json:"url"`
	AltText   string `json:"alt_text"`
	Position  int    `json:"position"`
}
