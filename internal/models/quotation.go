package models

import "time"

const (
	QuotationPending  = "pending"
	QuotationAccepted = "accepted"
	QuotationRejected = "rejected"
	QuotationExpired  = "expired"
)

// Quotation is an itemized pre-booking proposal from a master to a client.
// Amounts are centavos.
type Quotation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MasterID uint `gorm:"not null" json:"master_id"`
	ClientID uint `gorm:"not null" json:"client_id"`

	Items []QuotationItem `gorm:"constraint:OnDelete:CASCADE;" json:"items"`

	Subtotal int64 `gorm:"not null" json:"subtotal"`
	Discount int64 `gorm:"default:0" json:"discount"`
	Total    int64 `gorm:"not null" json:"total"`

	ValidUntil time.Time `json:"valid_until"`
	Status     string    `gorm:"size:20;default:'pending'" json:"status"`

	Notes string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type QuotationItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	QuotationID uint   `gorm:"not null;index" json:"quotation_id"`
	Description string `gorm:"size:255;not null" json:"description"`
	Quantity    int    `gorm:"default:1" json:"quantity"`
	UnitPrice   int64  `gorm:"not null" json:"unit_price"`
	Total       int64  `gorm:"not null" json:"total"`
}
