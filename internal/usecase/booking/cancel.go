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

// CancelBooking: either party escapes from any non-terminal state.
type CancelBooking struct {
	repo   domain.Repository
	notify notifier
	audit  auditor
}

func NewCancelBooking(
	repo domain.Repository,
	notify notifier,
	audit auditor,
) *CancelBooking {
	return &CancelBooking{
		repo:   repo,
		notify: notify,
		audit:  audit,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	var actor domain.Actor
	var counterparty uint

	switch userID {
	case b.ClientID:
		actor = domain.ActorClient
		counterparty = b.MasterID
	case b.MasterID:
		actor = domain.ActorMaster
		counterparty = b.ClientID
	default:
		return nil, httperr.ErrBusiness(httperr.CodeOwnershipViolation)
	}

	now := timezone.Now()
	if err := domain.Cancel(b, actor, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		ConversationID:  b.ConversationID,
		SenderID:        userID,
		RecipientID:     counterparty,
		RecipientLocale: recipientLocale(ctx, uc.repo, counterparty),
		BookingID:       b.ID,
		Kind:            "booking_cancelled",
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"actor": string(actor)},
	})

	return b, nil
}
