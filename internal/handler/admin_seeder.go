package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frogcrew/api/internal/service"
)

// AdminSeederHandler handles admin seeding endpoints
type AdminSeederHandler struct {
	seederService *service.SeederService
}

// NewAdminSeederHandler creates a new admin seeder handler
func NewAdminSeederHandler(seederService *service.SeederService) *AdminSeederHandler {
	return &AdminSeederHandler{seederService: seederService}
}

// Seed handles POST /api/admin/seed. Seeding an already populated database
// is a no-op reported with skipped=true.
func (h *AdminSeederHandler) Seed(c *gin.Context) {
	result, err := h.seederService.Seed(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "seed database")
		return
	}
	WriteJSON(c, http.StatusOK, result)
}
