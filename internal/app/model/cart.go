package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Cart is created lazily on first reference and never deleted by the API.
type Cart struct {
	ID        string    `gorm:"primaryKey;type:varchar(191)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Cart) TableName() string {
	return "carts"
}

// CartItem is keyed by (ID, CartID): item ids are unique per cart, not globally.
type CartItem struct {
	ID          string    `gorm:"primaryKey;type:varchar(191)" json:"id"`
	CartID      string    `gorm:"primaryKey;type:varchar(191)" json:"cart_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Price       float64   `gorm:"not null" json:"price"`
	Quantity    int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// LineAmount is price multiplied by quantity as a decimal. ok is false when
// the product is not finite.
func (i CartItem) LineAmount() (amount decimal.Decimal, ok bool) {
	if math.IsNaN(i.Price) || math.IsInf(i.Price, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(i.Price).Mul(decimal.NewFromInt(int64(i.Quantity))), true
}

// LineTotal is price multiplied by quantity. Finite products are computed in
// decimal so they agree with the cart sub-total.
func (i CartItem) LineTotal() float64 {
	if amount, ok := i.LineAmount(); ok {
		return amount.InexactFloat64()
	}
	return i.Price * float64(i.Quantity)
}
