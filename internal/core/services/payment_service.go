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

// PaymentService handles the payment ledger business logic
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	validate    *validator.Validate
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo repositories.PaymentRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		validate:    validator.New(),
	}
}

// CreatePaymentInput represents add-payment input
type CreatePaymentInput struct {
	MemberID    uint    `json:"member_id" validate:"required"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	PaymentDate string  `json:"payment_date"`
	PaymentType string  `json:"payment_type"`
	Month       string  `json:"month"`
	Status      string  `json:"status"`
}

// Create inserts one payment row. The member reference is not checked
// beforehand; the database's foreign key rejects unknown members. A
// payment may be created already PAID.
func (s *PaymentService) Create(ctx context.Context, input *CreatePaymentInput) (*models.Payment, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.ErrInvalidInput
	}

	status := input.Status
	switch status {
	case "":
		status = models.PaymentStatusPending
	case models.PaymentStatusPending, models.PaymentStatusPaid:
	default:
		return nil, domain.ErrInvalidPaymentStatus
	}

	paymentDate := input.PaymentDate
	if paymentDate == "" {
		paymentDate = time.Now().Format(dateLayout)
	}

	payment := &models.Payment{
		MemberID:    input.MemberID,
		Amount:      input.Amount,
		PaymentDate: paymentDate,
		PaymentType: input.PaymentType,
		Month:       input.Month,
		Status:      status,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		log.Printf("❌ Error adding payment for member %d: %v", input.MemberID, err)
		return nil, err
	}

	log.Printf("✅ Payment added for member ID %d", payment.MemberID)
	return payment, nil
}

// List returns the ledger newest first with pagination, each row
// carrying the owning member's name
func (s *PaymentService) List(ctx context.Context, offset, limit int) ([]*models.PaymentResponse, int64, error) {
	return s.paymentRepo.List(ctx, offset, limit)
}

// MarkPaid persists the PENDING → PAID transition for one payment.
// Returns true iff a pending payment was transitioned; unknown and
// already-PAID payments both report false.
func (s *PaymentService) MarkPaid(ctx context.Context, paymentID uint) (bool, error) {
	updated, err := s.paymentRepo.MarkPaid(ctx, paymentID)
	if err != nil {
		log.Printf("❌ Error marking payment %d as paid: %v", paymentID, err)
		return false, err
	}

	if updated {
		log.Printf("✅ Payment %d marked as PAID", paymentID)
	}
	return updated, nil
}
