package repositories

import (
	"context"

	"gymdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// memberRepository implements MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create inserts one member row
func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByID gets a member by ID
func (r *memberRepository) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).Where("member_id = ?", id).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// List lists members newest first with pagination
func (r *memberRepository) List(ctx context.Context, offset, limit int) ([]*models.Member, int64, error) {
	var members []*models.Member
	var total int64

	// Count total
	if err := r.db.WithContext(ctx).Model(&models.Member{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get members with pagination
	if err := r.db.WithContext(ctx).
		Order("member_id DESC").
		Offset(offset).Limit(limit).
		Find(&members).Error; err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// UpdateStatus sets the status for exactly one member. Returns true
// iff a row was affected; a missing member and a storage error both
// come back false to the caller.
func (r *memberRepository) UpdateStatus(ctx context.Context, id uint, status string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Member{}).
		Where("member_id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListExpiringBefore lists active members whose expiry date falls on
// or before the given date. Dates are the yyyy-mm-dd strings the form
// writes, which order lexicographically.
func (r *memberRepository) ListExpiringBefore(ctx context.Context, date string) ([]*models.Member, error) {
	var members []*models.Member
	err := r.db.WithContext(ctx).
		Where("status = ? AND expiry_date <> '' AND expiry_date <= ?", models.MemberStatusActive, date).
		Order("expiry_date ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Exists checks if a member exists
func (r *memberRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).Where("member_id = ?", id).Count(&count).Error
	return count > 0, err
}
