package handlers

import (
	"errors"
	"strings"

	"gymdesk/internal/core/domain"
	"gymdesk/internal/core/services"
	"gymdesk/internal/pkg/pagination"
	"gymdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles payment ledger endpoints
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePaymentRequest represents add-payment request body
type CreatePaymentRequest struct {
	MemberID    uint    `json:"member_id"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"payment_date"`
	PaymentType string  `json:"payment_type"`
	Month       string  `json:"month"`
	Status      string  `json:"status"`
}

// Create handles add payment
// @Summary Record a payment
// @Description Insert one payment row for a member
// @Tags Payments
// @Accept json
// @Produce json
// @Param body body CreatePaymentRequest true "Payment data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate required fields
	if req.MemberID == 0 {
		return response.BadRequest(c, "Member ID is required")
	}
	if req.Amount < 0 {
		return response.BadRequest(c, "Amount must not be negative")
	}

	input := &services.CreatePaymentInput{
		MemberID:    req.MemberID,
		Amount:      req.Amount,
		PaymentDate: strings.TrimSpace(req.PaymentDate),
		PaymentType: req.PaymentType,
		Month:       req.Month,
		Status:      req.Status,
	}

	payment, err := h.paymentService.Create(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid payment data")
		case errors.Is(err, domain.ErrInvalidPaymentStatus):
			return response.BadRequest(c, "Status must be PENDING or PAID")
		default:
			// Includes foreign-key rejection of unknown member IDs
			return response.BadRequest(c, "Failed to add payment")
		}
	}

	return response.Created(c, "Payment added successfully", fiber.Map{
		"payment": payment,
	})
}

// List handles the payment ledger
// @Summary List payments
// @Description List all payments with member names, newest first
// @Tags Payments
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	payments, total, err := h.paymentService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list payments")
	}

	return response.Success(c, "Payments retrieved successfully",
		pagination.NewResponse(payments, params, total))
}

// MarkPaid handles the mark-as-paid action
// @Summary Mark a payment as paid
// @Description Transition one payment from PENDING to PAID
// @Tags Payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payments/{id}/paid [put]
func (h *PaymentHandler) MarkPaid(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid payment ID")
	}

	updated, err := h.paymentService.MarkPaid(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Failed to mark payment as paid")
	}
	if !updated {
		return response.NotFound(c, "No pending payment with that ID")
	}

	return response.Success(c, "Payment marked as PAID", nil)
}
