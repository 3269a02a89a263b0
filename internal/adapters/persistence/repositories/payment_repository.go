package repositories

import (
	"context"

	"gymdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// paymentRepository implements PaymentRepository interface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create inserts one payment row. Member existence is left to the
// foreign-key constraint; an invalid member_id fails the insert.
func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// GetByID gets a payment by ID
func (r *paymentRepository) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).Where("payment_id = ?", id).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// List lists payments newest first with pagination, each row joined
// with the owning member's full name
func (r *paymentRepository) List(ctx context.Context, offset, limit int) ([]*models.PaymentResponse, int64, error) {
	var payments []*models.PaymentResponse
	var total int64

	// Count total
	if err := r.db.WithContext(ctx).Model(&models.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.listQuery(ctx).
		Offset(offset).Limit(limit).
		Scan(&payments).Error; err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

// listQuery builds the ledger query. LEFT JOIN keeps payments whose
// member row was removed; their member_name scans as empty.
func (r *paymentRepository) listQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("payments").
		Select(`payments.payment_id, payments.member_id,
			COALESCE(members.full_name, '') AS member_name,
			payments.amount, payments.payment_date, payments.payment_type,
			payments.month, payments.status`).
		Joins("LEFT JOIN members ON payments.member_id = members.member_id").
		Order("payments.payment_id DESC")
}

// MarkPaid transitions one payment PENDING → PAID. The status guard in
// the WHERE clause keeps the transition one-way: an already-PAID or
// missing payment affects zero rows and returns false.
func (r *paymentRepository) MarkPaid(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("payment_id = ? AND status = ?", id, models.PaymentStatusPending).
		Update("status", models.PaymentStatusPaid)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountByStatus counts payments with the given status
func (r *paymentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
