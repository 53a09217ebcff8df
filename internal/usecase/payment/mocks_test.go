package payment

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ManosLatam/marketplace-api/internal/audit"
	"github.com/ManosLatam/marketplace-api/internal/gateway"
	"github.com/ManosLatam/marketplace-api/internal/httperr"
	"github.com/ManosLatam/marketplace-api/internal/models"
	"github.com/ManosLatam/marketplace-api/internal/notify"
)

// -------- booking repository --------

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockBookingRepo) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) ListBookingsForUser(ctx context.Context, userID uint, status string) ([]models.Booking, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

// -------- payment repository --------

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) CreatePayment(ctx context.Context, p *models.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPaymentRepo) GetPayment(ctx context.Context, id uint) (*models.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentRepo) GetPaymentByProviderID(ctx context.Context, providerPaymentID string) (*models.Payment, error) {
	args := m.Called(ctx, providerPaymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentRepo) FindPartialPayment(ctx context.Context, bookingID uint) (*models.Payment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentRepo) HasApprovedPayment(ctx context.Context, bookingID uint) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *mockPaymentRepo) UpdatePayment(ctx context.Context, p *models.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPaymentRepo) ListPaymentsForUser(ctx context.Context, userID uint) ([]models.Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *mockPaymentRepo) AvailableCredits(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPaymentRepo) ReserveCredits(ctx context.Context, userID, bookingID uint, needed int64) (int64, error) {
	args := m.Called(ctx, userID, bookingID, needed)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPaymentRepo) RevertCredits(ctx context.Context, userID, bookingID uint) error {
	args := m.Called(ctx, userID, bookingID)
	return args.Error(0)
}

// -------- collector --------

type mockCollector struct {
	mock.Mock
}

func (m *mockCollector) Charge(ctx context.Context, req gateway.ChargeRequest) (*gateway.ChargeResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.ChargeResult), args.Error(1)
}

func (m *mockCollector) GetPayment(ctx context.Context, providerPaymentID string) (*gateway.ChargeResult, error) {
	args := m.Called(ctx, providerPaymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.ChargeResult), args.Error(1)
}

// -------- lock / side effects --------

type fakeLocker struct {
	held     bool
	acquired []string
	released int
}

func (f *fakeLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	if f.held {
		return nil, httperr.ErrBusiness("payment_in_progress")
	}
	f.acquired = append(f.acquired, key)
	return func() { f.released++ }, nil
}

type fakeNotifier struct {
	events []notify.Event
}

func (f *fakeNotifier) Dispatch(ev notify.Event) {
	f.events = append(f.events, ev)
}

type fakeAuditor struct {
	events []audit.Event
}

func (f *fakeAuditor) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}
