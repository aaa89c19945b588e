package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Permission flag names. These are the only flags the authorization layer
// recognizes; anything else in a stored blob is ignored.
const (
	PermViewOrders     = "can_view_orders"
	PermEditOrders     = "can_edit_orders"
	PermEditProducts   = "can_edit_products"
	PermDeleteProducts = "can_delete_products"
	PermCreateCoupons  = "can_create_coupons"
	PermEditCoupons    = "can_edit_coupons"
	PermDeleteCoupons  = "can_delete_coupons"
	PermManageUsers    = "can_manage_users"
	PermViewAnalytics  = "can_view_analytics"
)

// Permissions is the closed set of employee permission flags, stored as a JSON
// text column. Only meaningful for role=employee; admins pass every check.
type Permissions struct {
	CanViewOrders     bool `json:"can_view_orders"`
	CanEditOrders     bool `json:"can_edit_orders"`
	CanEditProducts   bool `json:"can_edit_products"`
	CanDeleteProducts bool `json:"can_delete_products"`
	CanCreateCoupons  bool `json:"can_create_coupons"`
	CanEditCoupons    bool `json:"can_edit_coupons"`
	CanDeleteCoupons  bool `json:"can_delete_coupons"`
	CanManageUsers    bool `json:"can_manage_users"`
	CanViewAnalytics  bool `json:"can_view_analytics"`
}

// Has reports whether the named flag is granted. Unknown names are never granted.
func (p Permissions) Has(name string) bool {
	switch name {
	case PermViewOrders:
		return p.CanViewOrders
	case PermEditOrders:
		return p.CanEditOrders
	case PermEditProducts:
		return p.CanEditProducts
	case PermDeleteProducts:
		return p.CanDeleteProducts
	case PermCreateCoupons:
		return p.CanCreateCoupons
	case PermEditCoupons:
		return p.CanEditCoupons
	case PermDeleteCoupons:
		return p.CanDeleteCoupons
	case PermManageUsers:
		return p.CanManageUsers
	case PermViewAnalytics:
		return p.CanViewAnalytics
	}
	return false
}

// Value serializes the flags for storage.
func (p Permissions) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan reads the stored blob. Legacy rows may hold NULL or malformed text;
// those scan as no permissions rather than failing the read path.
func (p *Permissions) Scan(value interface{}) error {
	*p = Permissions{}
	if value == nil {
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported permissions column type %T", value)
	}
	if len(data) == 0 {
		return nil
	}
	_ = json.Unmarshal(data, p)
	return nil
}

// User represents a customer, employee or administrator account
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Email       string         `gorm:"uniqueIndex;not null" json:"email"`
	Password    string         `json:"-"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Phone       string         `json:"phone"`
	Gender      string         `json:"gender,omitempty"`
	Role        string         `gorm:"default:customer" json:"role"`
	Permissions Permissions    `gorm:"type:text" json:"permissions"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	LastLoginAt time.Time      `json:"last_login_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:UserID"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
