package models

import "time"

// Booking is one agreed (or proposed) unit of work between a client and a
// master. Monetary values are centavos.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"not null" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	MasterID uint `gorm:"not null" json:"master_id"`
	Master   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"master"`

	ConversationID uint `json:"conversation_id"`

	QuotationID *uint `json:"quotation_id"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	TotalPrice    int64     `gorm:"not null" json:"total_price"`
	Notes         string    `gorm:"type:text" json:"notes"`
	ScheduledDate time.Time `json:"scheduled_date"`
	ClientAddress string    `gorm:"size:255" json:"client_address"`

	// Negotiation sub-state. Round > 0 with LastProposedBy == "master" means
	// the booking is pending because of a counter-proposal.
	NegotiationRound int    `gorm:"default:0" json:"negotiation_round"`
	LastProposedBy   string `gorm:"size:10" json:"last_proposed_by"`

	// Optimistic concurrency: every status write is a compare-and-swap.
	Version int `gorm:"default:0" json:"version"`

	ClientConfirmedAt *time.Time `json:"client_confirmed_at"`
	WorkStartedAt     *time.Time `json:"work_started_at"`
	ReviewRequestedAt *time.Time `json:"review_requested_at"`
	WorkCompletedAt   *time.Time `json:"work_completed_at"`
	CancelledAt       *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
