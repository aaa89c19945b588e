package models

import (
	"time"
)

// NewsletterSubscriber tracks a mailing-list signup. Unsubscribing flips
// IsActive instead of deleting so a later signup reactivates the row.
type NewsletterSubscriber struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	Name           string     `json:"name,omitempty"`
	IsActive       bool       `gorm:"default:true" json:"is_active"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
	CreatedAt      time.Time  `json:"subscribed_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
