package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/ManosLatam/marketplace-api/internal/domain/payment"
	"github.com/ManosLatam/marketplace-api/internal/models"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *PaymentGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentGormRepository) GetPayment(
	ctx context.Context,
	id uint,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentGormRepository) GetPaymentByProviderID(
	ctx context.Context,
	providerPaymentID string,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).
		Where("provider_payment_id = ?", providerPaymentID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentGormRepository) FindPartialPayment(
	ctx context.Context,
	bookingID uint,
) (*models.Payment, error) {

	var p models.Payment
	err := r.db.WithContext(ctx).
		Where(
			"booking_id = ? AND is_partial_payment = ? AND status = ?",
			bookingID, true, domain.StatusApproved,
		).
		Order("id ASC").
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentGormRepository) HasApprovedPayment(
	ctx context.Context,
	bookingID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("booking_id = ? AND status = ?", bookingID, domain.StatusApproved).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PaymentGormRepository) UpdatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PaymentGormRepository) ListPaymentsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Payment, error) {

	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Where("client_id = ? OR master_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// --------------------------------------------------
// Credits
// --------------------------------------------------

func (r *PaymentGormRepository) AvailableCredits(
	ctx context.Context,
	userID uint,
) (int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.ReferralCredit{}).
		Where("user_id = ? AND used = ?", userID, false).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// ReserveCredits takes unused rows greedily until needed is covered. The
// update is conditional on used = false, so a row already grabbed by a racing
// attempt simply drops out of the reservation.
func (r *PaymentGormRepository) ReserveCredits(
	ctx context.Context,
	userID uint,
	bookingID uint,
	needed int64,
) (int64, error) {

	var reserved int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var credits []models.ReferralCredit
		if err := tx.
			Where("user_id = ? AND used = ?", userID, false).
			Order("id ASC").
			Find(&credits).Error; err != nil {
			return err
		}

		for _, cr := range credits {
			if reserved >= needed {
				break
			}

			res := tx.Model(&models.ReferralCredit{}).
				Where("id = ? AND used = ?", cr.ID, false).
				Updates(map[string]any{
					"used":               true,
					"used_in_booking_id": bookingID,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				continue
			}

			reserved += cr.Amount
		}

		return nil
	})

	if err != nil {
		return 0, err
	}
	return reserved, nil
}

func (r *PaymentGormRepository) RevertCredits(
	ctx context.Context,
	userID uint,
	bookingID uint,
) error {

	return r.db.WithContext(ctx).
		Model(&models.ReferralCredit{}).
		Where("user_id = ? AND used = ? AND used_in_booking_id = ?", userID, true, bookingID).
		Updates(map[string]any{
			"used":               false,
			"used_in_booking_id": nil,
		}).Error
}

// Compile-time check
var _ domain.Repository = (*PaymentGormRepository)(nil)
