package services

import (
	"context"
	"log"
	"time"

	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"
	"gymdesk/internal/core/domain"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// MemberService handles member roster business logic
type MemberService struct {
	memberRepo repositories.MemberRepository
	validate   *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo repositories.MemberRepository) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
		validate:   validator.New(),
	}
}

// CreateMemberInput represents add-member input
type CreateMemberInput struct {
	FullName       string `json:"full_name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Age            int    `json:"age" validate:"gte=0"`
	Gender         string `json:"gender"`
	MembershipType string `json:"membership_type" validate:"required"`
	JoinDate       string `json:"join_date"`
	ExpiryDate     string `json:"expiry_date"`
}

// Create inserts one member with status forced to ACTIVE. Join and
// expiry dates default to today and today+1 month when omitted, the
// same convenience the add-member form offers.
func (s *MemberService) Create(ctx context.Context, input *CreateMemberInput) (*models.Member, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.ErrInvalidInput
	}

	if !validMembershipType(input.MembershipType) {
		return nil, domain.ErrInvalidMembershipType
	}

	joinDate := input.JoinDate
	expiryDate := input.ExpiryDate
	if joinDate == "" {
		joinDate = time.Now().Format(dateLayout)
	}
	if expiryDate == "" {
		expiryDate = time.Now().AddDate(0, 1, 0).Format(dateLayout)
	}

	member := &models.Member{
		FullName:       input.FullName,
		Email:          input.Email,
		Phone:          input.Phone,
		Address:        input.Address,
		Age:            input.Age,
		Gender:         input.Gender,
		MembershipType: input.MembershipType,
		JoinDate:       joinDate,
		ExpiryDate:     expiryDate,
		Status:         models.MemberStatusActive,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	log.Printf("✅ Member added: %s (ID: %d)", member.FullName, member.MemberID)
	return member, nil
}

// List returns the roster newest first with pagination
func (s *MemberService) List(ctx context.Context, offset, limit int) ([]*models.MemberResponse, int64, error) {
	members, total, err := s.memberRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.MemberResponse, len(members))
	for i, m := range members {
		responses[i] = m.ToResponse()
	}
	return responses, total, nil
}

// UpdateStatus toggles a member between ACTIVE and INACTIVE. Both
// directions are allowed; there is no terminal state.
func (s *MemberService) UpdateStatus(ctx context.Context, memberID uint, status string) (bool, error) {
	if status != models.MemberStatusActive && status != models.MemberStatusInactive {
		return false, domain.ErrInvalidMemberStatus
	}

	updated, err := s.memberRepo.UpdateStatus(ctx, memberID, status)
	if err != nil {
		log.Printf("❌ Error updating member %d status: %v", memberID, err)
		return false, err
	}

	if updated {
		log.Printf("✅ Member %d status set to %s", memberID, status)
	}
	return updated, nil
}

func validMembershipType(t string) bool {
	for _, known := range models.MembershipTypes {
		if t == known {
			return true
		}
	}
	return false
}
