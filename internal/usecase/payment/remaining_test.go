package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	paydomain "github.com/ManosLatam/marketplace-api/internal/domain/payment"
	"github.com/ManosLatam/marketplace-api/internal/gateway"
	"github.com/ManosLatam/marketplace-api/internal/httperr"
	"github.com/ManosLatam/marketplace-api/internal/models"
)

func completedBookingWithPartial() (*models.Booking, *models.Payment) {
	b := confirmedBooking()
	b.TotalPrice = 200000
	b.Status = "completed"

	prior := &models.Payment{
		ID:               50,
		BookingID:        b.ID,
		ClientID:         clientID,
		MasterID:         masterID,
		Amount:           100000,
		Status:           paydomain.StatusApproved,
		IsPartialPayment: true,
		RemainingAmount:  100000,
	}
	return b, prior
}

func newRemaining(
	bookings *mockBookingRepo,
	payments *mockPaymentRepo,
	collector *mockCollector,
	notifier *fakeNotifier,
	auditor *fakeAuditor,
) *RemainingPayment {
	return NewRemainingPayment(bookings, payments, collector, new(fakeLocker), testConfig(), notifier, auditor)
}

func TestRemainingPayment(t *testing.T) {
	bookings := new(mockBookingRepo)
	payments := new(mockPaymentRepo)
	collector := new(mockCollector)
	notifier := new(fakeNotifier)
	auditor := new(fakeAuditor)

	b, prior := completedBookingWithPartial()

	// The booking price moved after the first half was paid; the second
	// half still charges what was fixed at the first authorization.
	b.TotalPrice = 250000

	bookings.On("GetBooking", mock.Anything, b.ID).Return(b, nil)
	stubMasterLocale(bookings)

	payments.On("FindPartialPayment", mock.Anything, b.ID).Return(prior, nil)
	payments.On("CreatePayment", mock.Anything, mock.AnythingOfType("*models.Payment")).
		Run(func(args mock.Arguments) { args.Get(1).(*models.Payment).ID = 51 }).
		Return(nil)
	payments.On("UpdatePayment", mock.Anything, prior).Return(nil)

	collector.On("Charge", mock.Anything, mock.MatchedBy(func(req gateway.ChargeRequest) bool {
		return req.AmountCents == 100000
	})).Return(&gateway.ChargeResult{ProviderPaymentID: "800", Status: "approved"}, nil)

	uc := newRemaining(bookings, payments, collector, notifier, auditor)

	p, err := uc.Execute(context.Background(), clientID, b.ID, cardForm())
	require.NoError(t, err)

	assert.Equal(t, int64(100000), p.Amount)
	assert.False(t, p.IsPartialPayment)
	assert.Equal(t, 50, p.PaymentPercentage)
	assert.Equal(t, int64(0), p.RemainingAmount)

	// Both halves settle the same split.
	assert.Equal(t, int64(5000), p.CommissionAmount)
	assert.Equal(t, int64(95000), p.MasterAmount)

	// The first half now points at its closing payment.
	require.NotNil(t, prior.RemainingPaymentID)
	assert.Equal(t, p.ID, *prior.RemainingPaymentID)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, "payment_received", notifier.events[0].Kind)

	require.Len(t, auditor.events, 1)
	assert.Equal(t, "remaining_payment_created", auditor.events[0].Action)
}

func TestRemainingPaymentRejectedStaysOpen(t *testing.T) {
	bookings := new(mockBookingRepo)
	payments := new(mockPaymentRepo)
	collector := new(mockCollector)
	notifier := new(fakeNotifier)

	b, prior := completedBookingWithPartial()

	bookings.On("GetBooking", mock.Anything, b.ID).Return(b, nil)
	payments.On("FindPartialPayment", mock.Anything, b.ID).Return(prior, nil)
	payments.On("CreatePayment", mock.Anything, mock.AnythingOfType("*models.Payment")).Return(nil)

	collector.On("Charge", mock.Anything, mock.Anything).
		Return(&gateway.ChargeResult{ProviderPaymentID: "801", Status: "rejected", StatusDetail: "cc_rejected_high_risk"}, nil).
		Once()

	uc := newRemaining(bookings, payments, collector, notifier, new(fakeAuditor))

	p, err := uc.Execute(context.Background(), clientID, b.ID, cardForm())
	require.NoError(t, err)
	assert.Equal(t, paydomain.StatusRejected, p.Status)

	// The plan stays open: the first half is not linked to a rejected
	// attempt, so the client can retry.
	assert.Nil(t, prior.RemainingPaymentID)
	payments.AssertNotCalled(t, "UpdatePayment", mock.Anything, mock.Anything)
	assert.Empty(t, notifier.events)

	// A retry with a working card then closes the plan.
	collector.On("Charge", mock.Anything, mock.Anything).
		Return(&gateway.ChargeResult{ProviderPaymentID: "802", Status: "approved"}, nil)
	payments.On("UpdatePayment", mock.Anything, prior).Return(nil)
	stubMasterLocale(bookings)

	p2, err := uc.Execute(context.Background(), clientID, b.ID, cardForm())
	require.NoError(t, err)
	assert.Equal(t, paydomain.StatusApproved, p2.Status)
	require.NotNil(t, prior.RemainingPaymentID)
	assert.Equal(t, p2.ID, *prior.RemainingPaymentID)
}

func TestRemainingPaymentGuards(t *testing.T) {
	t.Run("no prior partial", func(t *testing.T) {
		bookings := new(mockBookingRepo)
		payments := new(mockPaymentRepo)

		b, _ := completedBookingWithPartial()
		bookings.On("GetBooking", mock.Anything, b.ID).Return(b, nil)
		payments.On("FindPartialPayment", mock.Anything, b.ID).Return(nil, nil)

		uc := newRemaining(bookings, payments, new(mockCollector), new(fakeNotifier), new(fakeAuditor))

		_, err := uc.Execute(context.Background(), clientID, b.ID, cardForm())
		assert.Equal(t, httperr.CodeNoPriorPartialPayment, httperr.BusinessCode(err))
	})

	t.Run("booking not completed", func(t *testing.T) {
		bookings := new(mockBookingRepo)
		payments := new(mockPaymentRepo)

		b, prior := completedBookingWithPartial()
		b.Status = "in_progress"
		bookings.On("GetBooking", mock.Anything, b.ID).Return(b, nil)
		payments.On("FindPartialPayment", mock.Anything, b.ID).Return(prior, nil)

		uc := newRemaining(bookings, payments, new(mockCollector), new(fakeNotifier), new(fakeAuditor))

		_, err := uc.Execute(context.Background(), clientID, b.ID, cardForm())
		assert.Equal(t, "booking_not_completed", httperr.BusinessCode(err))
	})

	t.Run("remaining already paid", func(t *testing.T) {
		bookings := new(mockBookingRepo)
		payments := new(mockPaymentRepo)

		b, prior := completedBookingWithPartial()
		second := uint(51)
		prior.RemainingPaymentID = &second

		bookings.On("GetBooking", mock.Anything, b.ID).Return(b, nil)
		payments.On("FindPartialPayment", mock.Anything, b.ID).Return(prior, nil)

		uc := newRemaining(bookings, payments, new(mockCollector), new(fakeNotifier), new(fakeAuditor))

		_, err := uc.Execute(context.Background(), clientID, b.ID, cardForm())
		assert.Equal(t, "remaining_already_paid", httperr.BusinessCode(err))
	})

	t.Run("ownership", func(t *testing.T) {
		bookings := new(mockBookingRepo)

		b, _ := completedBookingWithPartial()
		bookings.On("GetBooking", mock.Anything, b.ID).Return(b, nil)

		uc := newRemaining(bookings, new(mockPaymentRepo), new(mockCollector), new(fakeNotifier), new(fakeAuditor))

		_, err := uc.Execute(context.Background(), uint(999), b.ID, cardForm())
		assert.Equal(t, httperr.CodeOwnershipViolation, httperr.BusinessCode(err))
	})
}
