package payment

import (
	"context"

	"github.com/ManosLatam/marketplace-api/internal/audit"
	bookingdomain "github.com/ManosLatam/marketplace-api/internal/domain/booking"
	paydomain "github.com/ManosLatam/marketplace-api/internal/domain/payment"
	"github.com/ManosLatam/marketplace-api/internal/gateway"
	"github.com/ManosLatam/marketplace-api/internal/httperr"
	"github.com/ManosLatam/marketplace-api/internal/models"
	"github.com/ManosLatam/marketplace-api/internal/notify"
)

// SyncProviderPayment applies a collector notification to the local payment
// row. The collector's word is recorded verbatim, but an approved payment
// never reverts, and booking status is only ever driven by the state machine.
type SyncProviderPayment struct {
	bookings  bookingdomain.Repository
	payments  paydomain.Repository
	collector gateway.Collector
	notify    notifier
	audit     auditor
}

func NewSyncProviderPayment(
	bookings bookingdomain.Repository,
	payments paydomain.Repository,
	collector gateway.Collector,
	notify notifier,
	audit auditor,
) *SyncProviderPayment {
	return &SyncProviderPayment{
		bookings:  bookings,
		payments:  payments,
		collector: collector,
		notify:    notify,
		audit:     audit,
	}
}

func (uc *SyncProviderPayment) Execute(
	ctx context.Context,
	providerPaymentID string,
) (*models.Payment, error) {

	res, err := uc.collector.GetPayment(ctx, providerPaymentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodePaymentProviderError)
	}

	p, err := uc.payments.GetPaymentByProviderID(ctx, providerPaymentID)
	if err != nil {
		return nil, httperr.ErrBusiness("payment_not_found")
	}

	if p.Status == paydomain.StatusApproved {
		return p, nil
	}

	previous := p.Status
	p.Status = res.Status

	if err := uc.payments.UpdatePayment(ctx, p); err != nil {
		return nil, err
	}

	if p.Status == paydomain.StatusRejected && p.CreditsApplied > 0 {
		if err := uc.payments.RevertCredits(ctx, p.ClientID, p.BookingID); err != nil {
			return nil, err
		}
	}

	if previous != paydomain.StatusApproved && p.Status == paydomain.StatusApproved {
		if b, err := uc.bookings.GetBooking(ctx, p.BookingID); err == nil {
			uc.notify.Dispatch(notify.Event{
				ConversationID:  b.ConversationID,
				SenderID:        p.ClientID,
				RecipientID:     p.MasterID,
				RecipientLocale: masterLocale(ctx, uc.bookings, p.MasterID),
				BookingID:       b.ID,
				Kind:            "payment_received",
			})
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "payment_synced",
		Entity:   "payment",
		EntityID: &p.ID,
		Metadata: map[string]any{"from": previous, "to": p.Status},
	})

	return p, nil
}
