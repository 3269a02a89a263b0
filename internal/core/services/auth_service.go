package services

import (
	"context"
	"errors"
	"log"

	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"
	"gymdesk/internal/config"
	"gymdesk/internal/pkg/jwt"

	"gorm.io/gorm"
)

// Auth errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User        *models.UserResponse `json:"user"`
	AccessToken string               `json:"access_token"`
}

// ValidateLogin reports whether a stored user row matches both fields
// exactly. Comparison is case-sensitive string equality; passwords are
// stored and compared in plain text for compatibility with databases
// created by earlier releases — a known weakness, kept deliberately.
// Storage errors are logged and reported as a failed login, never
// propagated.
func (s *AuthService) ValidateLogin(ctx context.Context, username, password string) bool {
	count, err := s.userRepo.CountByCredentials(ctx, username, password)
	if err != nil {
		log.Printf("❌ Login check error for '%s': %v", username, err)
		return false
	}

	ok := count > 0
	if ok {
		log.Printf("✅ Login attempt for '%s': SUCCESS", username)
	} else {
		log.Printf("⚠️ Login attempt for '%s': FAILED", username)
	}
	return ok
}

// Login validates credentials and issues a session token on success
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	if !s.ValidateLogin(ctx, input.Username, input.Password) {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	accessToken, err := jwt.GenerateAccessToken(
		user.ID,
		user.Username,
		user.UserType,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:        user.ToResponse(),
		AccessToken: accessToken,
	}, nil
}

// GetUserByID gets a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
