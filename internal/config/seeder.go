package config

import (
	"log"

	"gymdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// Default admin account created at first schema bootstrap. Earlier
// releases shipped these exact values, so they stay fixed.
const (
	seedAdminUsername = "admin"
	seedAdminPassword = "admin123"
	seedAdminFullName = "Administrator"
	seedAdminEmail    = "admin@gym.com"
	seedAdminUserType = "Admin"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser ensures exactly one default admin account exists.
// An existing admin row is never overwritten, so a changed password
// survives restarts.
func (s *Seeder) seedAdminUser() error {
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("username = ?", seedAdminUsername).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Admin already exists
	}

	admin := &models.User{
		Username: seedAdminUsername,
		Password: seedAdminPassword,
		FullName: seedAdminFullName,
		Email:    seedAdminEmail,
		UserType: seedAdminUserType,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Default admin user created: %s", admin.Username)
	return nil
}
