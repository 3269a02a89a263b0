package handlers

import (
	"gymdesk/internal/config"
	"gymdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminHandler handles development/administrative endpoints
type AdminHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(db *gorm.DB, cfg *config.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg}
}

// ResetDatabase drops and recreates all tables, then reseeds.
// Destructive; refused outside dev mode.
// @Summary Reset the database
// @Description Drop all tables, recreate the schema, reapply seed data
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/reset [post]
func (h *AdminHandler) ResetDatabase(c *fiber.Ctx) error {
	if !h.cfg.IsDev() {
		return response.Forbidden(c, "Database reset is only available in dev mode")
	}

	if err := config.ResetDatabase(h.db); err != nil {
		return response.InternalServerError(c, "Failed to reset database")
	}

	return response.Success(c, "Database reset complete", nil)
}
