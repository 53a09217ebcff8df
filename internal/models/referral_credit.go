package models

import "time"

// ReferralCredit is a deductible balance a user may apply to a payment.
// Rows are consumed whole: once reserved for a booking the full amount is
// spent. On payment failure the row is reverted to unused.
type ReferralCredit struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint  `gorm:"not null;index" json:"user_id"`
	Amount int64 `gorm:"not null" json:"amount"`

	Used            bool  `gorm:"default:false" json:"used"`
	UsedInBookingID *uint `json:"used_in_booking_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
