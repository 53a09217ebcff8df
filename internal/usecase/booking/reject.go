package booking

import (
	"context"

	"github.com/ManosLatam/marketplace-api/internal/audit"
	domain "github.com/ManosLatam/marketplace-api/internal/domain/booking"
	"github.com/ManosLatam/marketplace-api/internal/httperr"
	"github.com/ManosLatam/marketplace-api/internal/models"
	"github.com/ManosLatam/marketplace-api/internal/notify"
	"github.com/ManosLatam/marketplace-api/internal/timezone"
)

// RejectBooking: the master declines a pending request; terminal.
type RejectBooking struct {
	repo   domain.Repository
	notify notifier
	audit  auditor
}

func NewRejectBooking(
	repo domain.Repository,
	notify notifier,
	audit auditor,
) *RejectBooking {
	return &RejectBooking{
		repo:   repo,
		notify: notify,
		audit:  audit,
	}
}

func (uc *RejectBooking) Execute(
	ctx context.Context,
	masterID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if b.MasterID != masterID {
		return nil, httperr.ErrBusiness(httperr.CodeOwnershipViolation)
	}

	now := timezone.Now()
	if err := domain.Reject(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		ConversationID:  b.ConversationID,
		SenderID:        masterID,
		RecipientID:     b.ClientID,
		RecipientLocale: recipientLocale(ctx, uc.repo, b.ClientID),
		BookingID:       b.ID,
		Kind:            "booking_rejected",
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &masterID,
		Action:   "booking_rejected",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
