package payment

import (
	"context"

	"github.com/ManosLatam/marketplace-api/internal/models"
)

type Repository interface {
	// -------- Payment --------
	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	GetPayment(
		ctx context.Context,
		id uint,
	) (*models.Payment, error)

	GetPaymentByProviderID(
		ctx context.Context,
		providerPaymentID string,
	) (*models.Payment, error)

	// FindPartialPayment returns the approved first-half payment of a
	// booking's partial plan, or nil when none exists. Rejected attempts
	// never count: the client retries those.
	FindPartialPayment(
		ctx context.Context,
		bookingID uint,
	) (*models.Payment, error)

	// HasApprovedPayment reports whether any approved payment already
	// exists for the booking, partial or full.
	HasApprovedPayment(
		ctx context.Context,
		bookingID uint,
	) (bool, error)

	UpdatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	ListPaymentsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Payment, error)

	// -------- Credits --------
	AvailableCredits(
		ctx context.Context,
		userID uint,
	) (int64, error)

	// ReserveCredits marks unused credit rows as used for the booking,
	// greedily until the accumulated amount covers needed or the rows run
	// out. Returns the total reserved. Rows are consumed whole.
	ReserveCredits(
		ctx context.Context,
		userID uint,
		bookingID uint,
		needed int64,
	) (int64, error)

	// RevertCredits is the compensating action: every credit tied to this
	// booking for this user goes back to unused.
	RevertCredits(
		ctx context.Context,
		userID uint,
		bookingID uint,
	) error
}
