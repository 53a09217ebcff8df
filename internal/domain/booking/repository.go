package booking

import (
	"context"

	"github.com/ManosLatam/marketplace-api/internal/models"
)

type Repository interface {
	// -------- Users --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Booking --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// CreateBooking also creates the conversation channel for the pair and
	// links it on the booking.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// UpdateBooking persists a transition with a compare-and-swap on the
	// version column. Losing a race returns a "conflict" business error.
	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForUser(
		ctx context.Context,
		userID uint,
		status string,
	) ([]models.Booking, error)
}
