package payment

import (
	"context"

	"github.com/ManosLatam/marketplace-api/internal/audit"
	bookingdomain "github.com/ManosLatam/marketplace-api/internal/domain/booking"
	paydomain "github.com/ManosLatam/marketplace-api/internal/domain/payment"
	"github.com/ManosLatam/marketplace-api/internal/httperr"
	"github.com/ManosLatam/marketplace-api/internal/models"
	"github.com/ManosLatam/marketplace-api/internal/notify"
	"github.com/ManosLatam/marketplace-api/internal/timezone"
)

// ReleaseEscrow: the client hands the held payout over to the master. Only
// possible on an approved payment of a completed booking, exactly once.
type ReleaseEscrow struct {
	bookings bookingdomain.Repository
	payments paydomain.Repository
	notify   notifier
	audit    auditor
}

func NewReleaseEscrow(
	bookings bookingdomain.Repository,
	payments paydomain.Repository,
	notify notifier,
	audit auditor,
) *ReleaseEscrow {
	return &ReleaseEscrow{
		bookings: bookings,
		payments: payments,
		notify:   notify,
		audit:    audit,
	}
}

func (uc *ReleaseEscrow) Execute(
	ctx context.Context,
	clientID uint,
	paymentID uint,
) (*models.Payment, error) {

	p, err := uc.payments.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, httperr.ErrBusiness("payment_not_found")
	}

	if p.ClientID != clientID {
		return nil, httperr.ErrBusiness(httperr.CodeOwnershipViolation)
	}

	b, err := uc.bookings.GetBooking(ctx, p.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := paydomain.CanRelease(p, b.Status); err != nil {
		return nil, err
	}

	now := timezone.Now()
	p.EscrowReleasedAt = &now

	if err := uc.payments.UpdatePayment(ctx, p); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		ConversationID:  b.ConversationID,
		SenderID:        clientID,
		RecipientID:     p.MasterID,
		RecipientLocale: masterLocale(ctx, uc.bookings, p.MasterID),
		BookingID:       b.ID,
		Kind:            "escrow_released",
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   "escrow_released",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	return p, nil
}
