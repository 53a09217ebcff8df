package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/ManosLatam/marketplace-api/internal/domain/booking"
	"github.com/ManosLatam/marketplace-api/internal/httperr"
	"github.com/ManosLatam/marketplace-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *BookingGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		conv := models.Conversation{
			ClientID: b.ClientID,
			MasterID: b.MasterID,
		}
		if err := tx.Create(&conv).Error; err != nil {
			return err
		}

		b.ConversationID = conv.ID
		return tx.Create(b).Error
	})
}

// UpdateBooking is a compare-and-swap on the version column. Concurrent
// transitions on the same booking lose with a "conflict" business error
// instead of last-write-wins.
func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND version = ?", b.ID, b.Version).
		Updates(map[string]any{
			"status":              b.Status,
			"total_price":         b.TotalPrice,
			"notes":               b.Notes,
			"negotiation_round":   b.NegotiationRound,
			"last_proposed_by":    b.LastProposedBy,
			"client_confirmed_at": b.ClientConfirmedAt,
			"work_started_at":     b.WorkStartedAt,
			"review_requested_at": b.ReviewRequestedAt,
			"work_completed_at":   b.WorkCompletedAt,
			"cancelled_at":        b.CancelledAt,
			"version":             b.Version + 1,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeConflict)
	}

	b.Version++
	return nil
}

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID uint,
	status string,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Master").
		Where("client_id = ? OR master_id = ?", userID, userID)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := q.
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
