package services

import (
	"context"
	"testing"

	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"

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

func seedTestMember(t *testing.T, db *gorm.DB, name, status string) *models.Member {
	t.Helper()

	member := &models.Member{
		FullName:       name,
		Email:          name + "@example.com",
		Age:            28,
		MembershipType: "Monthly",
		JoinDate:       "2026-08-01",
		ExpiryDate:     "2026-09-01",
		Status:         status,
	}
	require.NoError(t, repositories.NewMemberRepository(db).Create(context.Background(), member))
	return member
}
