package payment

import (
	"context"
	"fmt"

	"github.com/ManosLatam/marketplace-api/internal/audit"
	"github.com/ManosLatam/marketplace-api/internal/config"
	bookingdomain "github.com/ManosLatam/marketplace-api/internal/domain/booking"
	paydomain "github.com/ManosLatam/marketplace-api/internal/domain/payment"
	"github.com/ManosLatam/marketplace-api/internal/gateway"
	"github.com/ManosLatam/marketplace-api/internal/httperr"
	"github.com/ManosLatam/marketplace-api/internal/models"
	"github.com/ManosLatam/marketplace-api/internal/notify"
)

// RemainingPayment charges the second half of a partial plan. The amount is
// the remainder captured on the first payment row, so interim negotiation
// edits to the booking price never change what the second half costs.
type RemainingPayment struct {
	bookings  bookingdomain.Repository
	payments  paydomain.Repository
	collector gateway.Collector
	locks     locker
	cfg       *config.Config
	notify    notifier
	audit     auditor
}

func NewRemainingPayment(
	bookings bookingdomain.Repository,
	payments paydomain.Repository,
	collector gateway.Collector,
	locks locker,
	cfg *config.Config,
	notify notifier,
	audit auditor,
) *RemainingPayment {
	return &RemainingPayment{
		bookings:  bookings,
		payments:  payments,
		collector: collector,
		locks:     locks,
		cfg:       cfg,
		notify:    notify,
		audit:     audit,
	}
}

func (uc *RemainingPayment) Execute(
	ctx context.Context,
	clientID uint,
	bookingID uint,
	form ChargeForm,
) (*models.Payment, error) {

	release, err := uc.locks.Acquire(
		ctx,
		fmt.Sprintf("payment:user:%d", clientID),
		paymentLockTTL,
	)
	if err != nil {
		return nil, err
	}
	defer release()

	b, err := uc.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if b.ClientID != clientID {
		return nil, httperr.ErrBusiness(httperr.CodeOwnershipViolation)
	}

	prior, err := uc.payments.FindPartialPayment(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := paydomain.CanCreateRemaining(b.Status, prior); err != nil {
		return nil, err
	}

	calcIn := paydomain.Input{
		PriceBase:     prior.RemainingAmount,
		Type:          paydomain.TypeFull,
		Method:        form.PaymentMethodID,
		CommissionBP:  uc.cfg.Commission.BookingBP,
		ProviderFeeBP: uc.cfg.Provider.FeeBP(form.PaymentMethodID),
	}

	p, err := executeCharge(ctx, uc.payments, uc.collector, calcIn, b, form, false, 50)
	if err != nil {
		return nil, err
	}

	// Only an approved charge closes the plan. A rejected attempt stays
	// unlinked so the client can retry the second half.
	if p.Status == paydomain.StatusApproved {
		prior.RemainingPaymentID = &p.ID
		if err := uc.payments.UpdatePayment(ctx, prior); err != nil {
			return nil, err
		}

		uc.notify.Dispatch(notify.Event{
			ConversationID:  b.ConversationID,
			SenderID:        clientID,
			RecipientID:     b.MasterID,
			RecipientLocale: masterLocale(ctx, uc.bookings, b.MasterID),
			BookingID:       b.ID,
			Kind:            "payment_received",
		})
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   "remaining_payment_created",
		Entity:   "payment",
		EntityID: &p.ID,
		Metadata: p.Metadata,
	})

	return p, nil
}
