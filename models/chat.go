package models

import "time"

// ChatMessage is one user/assistant exchange. Append-only.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Response  string    `gorm:"type:text;not null" json:"response"`
	CreatedAt time.Time `json:"created_at"`
}
