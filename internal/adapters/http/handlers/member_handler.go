package handlers

import (
	"errors"
	"strconv"
	"strings"

	"gymdesk/internal/core/domain"
	"gymdesk/internal/core/services"
	"gymdesk/internal/pkg/pagination"
	"gymdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MemberHandler handles member roster endpoints
type MemberHandler struct {
	memberService *services.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// CreateMemberRequest represents add-member request body.
// Age arrives as text, the way the form field submits it; it must
// parse as an integer before the record is stored.
type CreateMemberRequest struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Age            string `json:"age"`
	Gender         string `json:"gender"`
	MembershipType string `json:"membership_type"`
	JoinDate       string `json:"join_date"`
	ExpiryDate     string `json:"expiry_date"`
}

// Create handles add member
// @Summary Add a new member
// @Description Insert one member with status ACTIVE
// @Tags Members
// @Accept json
// @Produce json
// @Param body body CreateMemberRequest true "Member data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /members [post]
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var req CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate required fields
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" {
		return response.BadRequest(c, "Please fill in the Full Name and Email")
	}

	age, err := strconv.Atoi(strings.TrimSpace(req.Age))
	if err != nil {
		return response.BadRequest(c, "Age must be a number")
	}

	input := &services.CreateMemberInput{
		FullName:       strings.TrimSpace(req.FullName),
		Email:          strings.TrimSpace(req.Email),
		Phone:          strings.TrimSpace(req.Phone),
		Address:        strings.TrimSpace(req.Address),
		Age:            age,
		Gender:         req.Gender,
		MembershipType: req.MembershipType,
		JoinDate:       strings.TrimSpace(req.JoinDate),
		ExpiryDate:     strings.TrimSpace(req.ExpiryDate),
	}

	member, err := h.memberService.Create(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid member data")
		case errors.Is(err, domain.ErrInvalidMembershipType):
			return response.BadRequest(c, "Unknown membership type")
		default:
			return response.InternalServerError(c, "Failed to add member")
		}
	}

	return response.Created(c, "Member saved successfully", fiber.Map{
		"member": member.ToResponse(),
	})
}

// List handles the member roster
// @Summary List members
// @Description List all members, newest first
// @Tags Members
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /members [get]
func (h *MemberHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	members, total, err := h.memberService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list members")
	}

	return response.Success(c, "Members retrieved successfully",
		pagination.NewResponse(members, params, total))
}

// UpdateStatusRequest represents status toggle request body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles the ACTIVE/INACTIVE toggle
// @Summary Update member status
// @Description Set one member's status to ACTIVE or INACTIVE
// @Tags Members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id}/status [put]
func (h *MemberHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid member ID")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.memberService.UpdateStatus(c.Context(), uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMemberStatus):
			return response.BadRequest(c, "Status must be ACTIVE or INACTIVE")
		default:
			return response.InternalServerError(c, "Failed to update member status")
		}
	}
	if !updated {
		return response.NotFound(c, "Member not found")
	}

	return response.Success(c, "Member status updated", nil)
}
