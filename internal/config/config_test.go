package config

import (
	"context"
	"testing"

	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

func TestSeederCreatesDefaultAdmin(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, NewSeeder(db).Run())

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, "admin123", admin.Password)
	assert.Equal(t, "Administrator", admin.FullName)
	assert.Equal(t, "admin@gym.com", admin.Email)
	assert.Equal(t, "Admin", admin.UserType)
}

func TestSeederDoesNotOverwriteExistingAdmin(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, NewSeeder(db).Run())

	// Simulate a password changed after first bootstrap
	require.NoError(t, db.Model(&models.User{}).
		Where("username = ?", "admin").
		Update("password", "changed").Error)

	// Rerunning the seeder must leave the row alone
	require.NoError(t, NewSeeder(db).Run())

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, "changed", admin.Password)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestResetDatabase(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, NewSeeder(db).Run())
	ctx := context.Background()

	memberRepo := repositories.NewMemberRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	member := &models.Member{
		FullName:       "alice",
		Email:          "alice@example.com",
		MembershipType: "Monthly",
		Status:         models.MemberStatusActive,
	}
	require.NoError(t, memberRepo.Create(ctx, member))
	require.NoError(t, paymentRepo.Create(ctx, &models.Payment{
		MemberID: member.MemberID,
		Amount:   100,
		Status:   models.PaymentStatusPaid,
	}))

	require.NoError(t, ResetDatabase(db))

	// All rows are gone
	members, _, err := memberRepo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, members)

	payments, _, err := paymentRepo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, payments)

	// Seed is reapplied, so the default admin authenticates again
	userRepo := repositories.NewUserRepository(db)
	count, err := userRepo.CountByCredentials(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
