package payment

import (
	"github.com/ManosLatam/marketplace-api/internal/httperr"
	"github.com/ManosLatam/marketplace-api/internal/models"
)

// Payment status mirrors the collector's states. escrow_released_at is local.
const (
	StatusApproved  = "approved"
	StatusPending   = "pending"
	StatusInProcess = "in_process"
	StatusRejected  = "rejected"
)

// MethodCredits marks a payment fully covered by referral credits; the
// collector is never invoked for these.
const MethodCredits = "credits"

// CanRelease: the payout leaves escrow only when the payment is approved, the
// work was approved by the client, and the hold was not released before.
func CanRelease(p *models.Payment, bookingStatus string) error {
	if p.Status != StatusApproved {
		return httperr.ErrBusiness("payment_not_approved")
	}
	if p.EscrowReleasedAt != nil {
		return httperr.ErrBusiness("escrow_already_released")
	}
	if bookingStatus != "completed" {
		return httperr.ErrBusiness("booking_not_completed")
	}
	return nil
}

// CanCreateRemaining: the second half of a partial plan needs the booking
// completed and exactly one prior approved partial payment.
func CanCreateRemaining(bookingStatus string, prior *models.Payment) error {
	if bookingStatus != "completed" {
		return httperr.ErrBusiness("booking_not_completed")
	}
	if prior == nil || !prior.IsPartialPayment {
		return httperr.ErrBusiness(httperr.CodeNoPriorPartialPayment)
	}
	if prior.Status != StatusApproved {
		return httperr.ErrBusiness(httperr.CodeNoPriorPartialPayment)
	}
	if prior.RemainingPaymentID != nil {
		return httperr.ErrBusiness("remaining_already_paid")
	}
	return nil
}
