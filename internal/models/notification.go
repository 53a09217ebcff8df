package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint   `gorm:"not null;index" json:"user_id"`
	Type   string `gorm:"size:50;not null" json:"type"`

	Title   string `gorm:"size:150" json:"title"`
	Message string `gorm:"size:500" json:"message"`

	BookingID *uint  `json:"booking_id"`
	Metadata  string `gorm:"type:text" json:"metadata"`

	ReadAt    *time.Time `json:"read_at"`
	CreatedAt time.Time  `json:"created_at"`
}
