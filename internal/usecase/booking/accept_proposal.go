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

// AcceptProposal: the client agrees to the master's counter-proposal.
type AcceptProposal struct {
	repo   domain.Repository
	notify notifier
	audit  auditor
}

func NewAcceptProposal(
	repo domain.Repository,
	notify notifier,
	audit auditor,
) *AcceptProposal {
	return &AcceptProposal{
		repo:   repo,
		notify: notify,
		audit:  audit,
	}
}

func (uc *AcceptProposal) Execute(
	ctx context.Context,
	clientID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if b.ClientID != clientID {
		return nil, httperr.ErrBusiness(httperr.CodeOwnershipViolation)
	}

	now := timezone.Now()
	if err := domain.AcceptProposal(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		ConversationID:  b.ConversationID,
		SenderID:        clientID,
		RecipientID:     b.MasterID,
		RecipientLocale: recipientLocale(ctx, uc.repo, b.MasterID),
		BookingID:       b.ID,
		Kind:            "proposal_accepted",
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   "proposal_accepted",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
