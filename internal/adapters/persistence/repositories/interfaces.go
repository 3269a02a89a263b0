package repositories

import (
	"context"

	"gymdesk/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	CountByCredentials(ctx context.Context, username, password string) (int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// MemberRepository defines member repository interface
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	List(ctx context.Context, offset, limit int) ([]*models.Member, int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) (bool, error)
	ListExpiringBefore(ctx context.Context, date string) ([]*models.Member, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// PaymentRepository defines payment repository interface
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id uint) (*models.Payment, error)
	List(ctx context.Context, offset, limit int) ([]*models.PaymentResponse, int64, error)
	MarkPaid(ctx context.Context, id uint) (bool, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}
