package services

import (
	"context"

	"gymdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// DashboardService handles dashboard operations
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardStats represents the four front-desk counters
type DashboardStats struct {
	TotalMembers    int64 `json:"total_members"`
	ActiveMembers   int64 `json:"active_members"`
	TotalRevenue    int64 `json:"total_revenue"`
	PendingPayments int64 `json:"pending_payments"`
}

// GetStats computes the dashboard aggregates. The four queries run
// independently, not in one transaction; with the single local
// writer that cannot produce a visible skew.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	// Total members
	if err := s.db.WithContext(ctx).Table("members").
		Count(&stats.TotalMembers).Error; err != nil {
		return nil, err
	}

	// Active members
	if err := s.db.WithContext(ctx).Table("members").
		Where("status = ?", models.MemberStatusActive).
		Count(&stats.ActiveMembers).Error; err != nil {
		return nil, err
	}

	// Total revenue: sum of PAID amounts, truncated to a whole unit
	var revenue float64
	if err := s.db.WithContext(ctx).Table("payments").
		Where("status = ?", models.PaymentStatusPaid).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	stats.TotalRevenue = int64(revenue)

	// Pending payments
	if err := s.db.WithContext(ctx).Table("payments").
		Where("status = ?", models.PaymentStatusPending).
		Count(&stats.PendingPayments).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
