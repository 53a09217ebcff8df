package models

import "time"

// Payment is one monetary transaction against a booking. Amounts are centavos
// and must satisfy commission_amount + master_amount == amount at creation.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint    `gorm:"not null;index" json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"booking"`

	ClientID uint `gorm:"not null" json:"client_id"`
	MasterID uint `gorm:"not null" json:"master_id"`

	Amount           int64 `gorm:"not null" json:"amount"`
	CommissionAmount int64 `gorm:"not null" json:"commission_amount"`
	MasterAmount     int64 `gorm:"not null" json:"master_amount"`

	// Provider fee carried through for audit only; not deducted from
	// master_amount.
	ProviderFee int64 `json:"provider_fee"`

	CreditsApplied int64 `json:"credits_applied"`

	Status        string `gorm:"size:20;default:'pending'" json:"status"`
	PaymentMethod string `gorm:"size:30" json:"payment_method"`

	PaymentPercentage  int   `gorm:"default:100" json:"payment_percentage"`
	IsPartialPayment   bool  `gorm:"default:false" json:"is_partial_payment"`
	RemainingAmount    int64 `json:"remaining_amount"`
	RemainingPaymentID *uint `json:"remaining_payment_id"`

	ProviderPaymentID string `gorm:"size:64;index" json:"provider_payment_id"`
	IdempotencyKey    string `gorm:"size:36;uniqueIndex" json:"idempotency_key"`

	EscrowReleasedAt *time.Time `json:"escrow_released_at"`

	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
