package models

import "time"

// CartItem is the server-side copy of a user's cart line. PriceAtAdd is the
// catalog price when the item was added; checkout charges that snapshot, not
// the live price.
type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"index;not null" json:"user_id"`
	MedicineID   uint      `json:"medicine_id"`
	MedicineName string    `json:"medicine_name"`
	PriceAtAdd   float64   `json:"price"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}
