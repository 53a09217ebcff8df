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

func pendingProviderPayment() *models.Payment {
	return &models.Payment{
		ID:                100,
		BookingID:         1,
		ClientID:          clientID,
		MasterID:          masterID,
		Status:            paydomain.StatusPending,
		ProviderPaymentID: "777",
	}
}

func TestSyncProviderPaymentApproves(t *testing.T) {
	bookings := new(mockBookingRepo)
	payments := new(mockPaymentRepo)
	collector := new(mockCollector)
	notifier := new(fakeNotifier)
	auditor := new(fakeAuditor)

	p := pendingProviderPayment()
	b := confirmedBooking()

	collector.On("GetPayment", mock.Anything, "777").
		Return(&gateway.ChargeResult{ProviderPaymentID: "777", Status: "approved"}, nil)
	payments.On("GetPaymentByProviderID", mock.Anything, "777").Return(p, nil)
	payments.On("UpdatePayment", mock.Anything, p).Return(nil)
	bookings.On("GetBooking", mock.Anything, b.ID).Return(b, nil)
	stubMasterLocale(bookings)

	uc := NewSyncProviderPayment(bookings, payments, collector, notifier, auditor)

	got, err := uc.Execute(context.Background(), "777")
	require.NoError(t, err)
	assert.Equal(t, paydomain.StatusApproved, got.Status)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, "payment_received", notifier.events[0].Kind)

	require.Len(t, auditor.events, 1)
	assert.Equal(t, "payment_synced", auditor.events[0].Action)
}

func TestSyncProviderPaymentNeverRevertsApproved(t *testing.T) {
	payments := new(mockPaymentRepo)
	collector := new(mockCollector)
	notifier := new(fakeNotifier)

	p := pendingProviderPayment()
	p.Status = paydomain.StatusApproved

	// The collector momentarily reports in_process; the local approved
	// state wins.
	collector.On("GetPayment", mock.Anything, "777").
		Return(&gateway.ChargeResult{ProviderPaymentID: "777", Status: "in_process"}, nil)
	payments.On("GetPaymentByProviderID", mock.Anything, "777").Return(p, nil)

	uc := NewSyncProviderPayment(new(mockBookingRepo), payments, collector, notifier, new(fakeAuditor))

	got, err := uc.Execute(context.Background(), "777")
	require.NoError(t, err)
	assert.Equal(t, paydomain.StatusApproved, got.Status)

	payments.AssertNotCalled(t, "UpdatePayment", mock.Anything, mock.Anything)
	assert.Empty(t, notifier.events)
}

func TestSyncProviderPaymentRejectionRevertsCredits(t *testing.T) {
	payments := new(mockPaymentRepo)
	collector := new(mockCollector)
	notifier := new(fakeNotifier)

	p := pendingProviderPayment()
	p.CreditsApplied = 30000

	collector.On("GetPayment", mock.Anything, "777").
		Return(&gateway.ChargeResult{ProviderPaymentID: "777", Status: "rejected"}, nil)
	payments.On("GetPaymentByProviderID", mock.Anything, "777").Return(p, nil)
	payments.On("UpdatePayment", mock.Anything, p).Return(nil)
	payments.On("RevertCredits", mock.Anything, clientID, p.BookingID).Return(nil)

	uc := NewSyncProviderPayment(new(mockBookingRepo), payments, collector, notifier, new(fakeAuditor))

	got, err := uc.Execute(context.Background(), "777")
	require.NoError(t, err)
	assert.Equal(t, paydomain.StatusRejected, got.Status)

	payments.AssertCalled(t, "RevertCredits", mock.Anything, clientID, p.BookingID)
	assert.Empty(t, notifier.events)
}

func TestSyncProviderPaymentErrors(t *testing.T) {
	t.Run("collector unavailable", func(t *testing.T) {
		collector := new(mockCollector)
		collector.On("GetPayment", mock.Anything, "777").Return(nil, assert.AnError)

		uc := NewSyncProviderPayment(new(mockBookingRepo), new(mockPaymentRepo), collector, new(fakeNotifier), new(fakeAuditor))

		_, err := uc.Execute(context.Background(), "777")
		assert.Equal(t, httperr.CodePaymentProviderError, httperr.BusinessCode(err))
	})

	t.Run("unknown local payment", func(t *testing.T) {
		payments := new(mockPaymentRepo)
		collector := new(mockCollector)

		collector.On("GetPayment", mock.Anything, "888").
			Return(&gateway.ChargeResult{ProviderPaymentID: "888", Status: "approved"}, nil)
		payments.On("GetPaymentByProviderID", mock.Anything, "888").Return(nil, assert.AnError)

		uc := NewSyncProviderPayment(new(mockBookingRepo), payments, collector, new(fakeNotifier), new(fakeAuditor))

		_, err := uc.Execute(context.Background(), "888")
		assert.Equal(t, "payment_not_found", httperr.BusinessCode(err))
	})
}
