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

// NegotiateBooking: the master counters with a new price and the booking
// cycles back to pending for client review.
type NegotiateBooking struct {
	repo   domain.Repository
	notify notifier
	audit  auditor
}

func NewNegotiateBooking(
	repo domain.Repository,
	notify notifier,
	audit auditor,
) *NegotiateBooking {
	return &NegotiateBooking{
		repo:   repo,
		notify: notify,
		audit:  audit,
	}
}

func (uc *NegotiateBooking) Execute(
	ctx context.Context,
	masterID uint,
	bookingID uint,
	newPrice int64,
	note string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if b.MasterID != masterID {
		return nil, httperr.ErrBusiness(httperr.CodeOwnershipViolation)
	}

	now := timezone.Now()
	if err := domain.Negotiate(b, newPrice, note, now); err != nil {
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
		Kind:            "booking_negotiated",
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &masterID,
		Action:   "booking_negotiated",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"new_price": newPrice, "round": b.NegotiationRound},
	})

	return b, nil
}
