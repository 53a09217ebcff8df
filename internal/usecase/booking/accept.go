package booking

import (
	"context"

	"github.com/ManosLatam/marketplace-api/internal/audit"
	domain "github.com/ManosLatam/marketplace-api/internal/domain/booking"
	"github.com/ManosLatam/marketplace-api/internal/httperr"
	"github.com/ManosLatam/marketplace-api/internal/models"
	"github.com/ManosLatam/marketplace-api/internal/notify"
)

// AcceptBooking: the master confirms the client's original request.
type AcceptBooking struct {
	repo   domain.Repository
	notify notifier
	audit  auditor
}

func NewAcceptBooking(
	repo domain.Repository,
	notify notifier,
	audit auditor,
) *AcceptBooking {
	return &AcceptBooking{
		repo:   repo,
		notify: notify,
		audit:  audit,
	}
}

func (uc *AcceptBooking) Execute(
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

	if err := domain.Accept(b); err != nil {
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
		Kind:            "booking_accepted",
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &masterID,
		Action:   "booking_accepted",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
