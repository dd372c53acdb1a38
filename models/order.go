package models

import "time"

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OrderRef    string      `gorm:"uniqueIndex" json:"order_ref"`
	UserID      string      `gorm:"not null;index" json:"user_id"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount float64     `json:"total_amount"`
	CreatedAt   time.Time   `json:"created_at"`
}

// OrderItem keeps its own name/price snapshot so order history stays intact
// even when the catalog entry is later edited or removed.
type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"order_id"`
	MedicineID   uint    `json:"medicine_id"`
	MedicineName string  `json:"medicine_name"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}
