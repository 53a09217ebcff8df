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

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientID uint
	MasterID uint

	TotalPrice int64 // centavos

	Date string // 2006-01-02
	Time string // 15:04

	ClientAddress string
	Notes         string

	QuotationID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	notify notifier
	audit  auditor
}

func NewCreateBooking(
	repo domain.Repository,
	notify notifier,
	audit auditor,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		notify: notify,
		audit:  audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	master, err := uc.repo.GetUser(ctx, in.MasterID)
	if err != nil || master.Role != models.RoleMaster {
		return nil, httperr.ErrBusiness("master_not_found")
	}

	if in.TotalPrice <= 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}

	scheduled, err := timezone.ParseDateTime(in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	b := &models.Booking{
		ClientID:      in.ClientID,
		MasterID:      in.MasterID,
		QuotationID:   in.QuotationID,
		Status:        string(domain.InitialStatus()),
		TotalPrice:    in.TotalPrice,
		Notes:         in.Notes,
		ScheduledDate: scheduled,
		ClientAddress: in.ClientAddress,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		ConversationID:  b.ConversationID,
		SenderID:        in.ClientID,
		RecipientID:     in.MasterID,
		RecipientLocale: master.Locale,
		BookingID:       b.ID,
		Kind:            "booking_created",
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
