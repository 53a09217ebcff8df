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

// ======================================================
// INPUT
// ======================================================

type CheckoutInput struct {
	BookingID uint
	ClientID  uint

	PaymentType paydomain.Type // full | partial

	Form ChargeForm
}

// ======================================================
// USE CASE
// ======================================================

// Checkout charges a booking: the full price, or the first half of the
// partial plan. The payout stays in escrow until the client releases it.
type Checkout struct {
	bookings  bookingdomain.Repository
	payments  paydomain.Repository
	collector gateway.Collector
	locks     locker
	cfg       *config.Config
	notify    notifier
	audit     auditor
}

func NewCheckout(
	bookings bookingdomain.Repository,
	payments paydomain.Repository,
	collector gateway.Collector,
	locks locker,
	cfg *config.Config,
	notify notifier,
	audit auditor,
) *Checkout {
	return &Checkout{
		bookings:  bookings,
		payments:  payments,
		collector: collector,
		locks:     locks,
		cfg:       cfg,
		notify:    notify,
		audit:     audit,
	}
}

func (uc *Checkout) Execute(
	ctx context.Context,
	in CheckoutInput,
) (*models.Payment, error) {

	if in.PaymentType != paydomain.TypeFull && in.PaymentType != paydomain.TypePartial {
		return nil, httperr.ErrBusiness(httperr.CodeIncompleteFormData)
	}

	release, err := uc.locks.Acquire(
		ctx,
		fmt.Sprintf("payment:user:%d", in.ClientID),
		paymentLockTTL,
	)
	if err != nil {
		return nil, err
	}
	defer release()

	b, err := uc.bookings.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if b.ClientID != in.ClientID {
		return nil, httperr.ErrBusiness(httperr.CodeOwnershipViolation)
	}

	if b.Status == string(bookingdomain.StatusCancelled) {
		return nil, httperr.ErrBusiness("booking_cancelled")
	}

	// One charged sequence per booking. An approved partial means the only
	// valid next step is the remaining flow; rejected attempts never block
	// a retry.
	prior, err := uc.payments.FindPartialPayment(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}
	if prior != nil && prior.Status == paydomain.StatusApproved {
		return nil, httperr.ErrBusiness("partial_already_paid")
	}

	paid, err := uc.payments.HasApprovedPayment(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}
	if paid {
		return nil, httperr.ErrBusiness("booking_already_paid")
	}

	calcIn := paydomain.Input{
		PriceBase:     b.TotalPrice,
		Type:          in.PaymentType,
		Method:        in.Form.PaymentMethodID,
		CommissionBP:  uc.cfg.Commission.BookingBP,
		ProviderFeeBP: uc.cfg.Provider.FeeBP(in.Form.PaymentMethodID),
	}

	percentage := 100
	isPartial := false
	if in.PaymentType == paydomain.TypePartial {
		percentage = 50
		isPartial = true
	}

	p, err := executeCharge(ctx, uc.payments, uc.collector, calcIn, b, in.Form, isPartial, percentage)
	if err != nil {
		return nil, err
	}

	if p.Status == paydomain.StatusApproved {
		uc.notify.Dispatch(notify.Event{
			ConversationID:  b.ConversationID,
			SenderID:        b.ClientID,
			RecipientID:     b.MasterID,
			RecipientLocale: masterLocale(ctx, uc.bookings, b.MasterID),
			BookingID:       b.ID,
			Kind:            "payment_received",
		})
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "payment_created",
		Entity:   "payment",
		EntityID: &p.ID,
		Metadata: p.Metadata,
	})

	return p, nil
}

func masterLocale(ctx context.Context, repo bookingdomain.Repository, userID uint) string {
	user, err := repo.GetUser(ctx, userID)
	if err != nil || user.Locale == "" {
		return "es"
	}
	return user.Locale
}
