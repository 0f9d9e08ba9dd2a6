package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frogcrew/api/internal/middleware"
	"github.com/frogcrew/api/internal/model"
	"github.com/frogcrew/api/internal/service"
)

// AvailabilityHandler handles availability endpoints
type AvailabilityHandler struct {
	availability *service.AvailabilityService
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(availability *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// Submit handles POST /api/availability. Members answer for themselves;
// admins may answer on behalf of any member.
func (h *AvailabilityHandler) Submit(c *gin.Context) {
	var a model.Availability
	if !bind(c, &a, false) {
		return
	}

	claims := middleware.GetClaims(c.Request.Context())
	if claims != nil && !claims.IsAdmin() && claims.MemberID != a.MemberID {
		WriteError(c, model.NewForbiddenError("members may only submit their own availability"))
		return
	}

	saved, err := h.availability.SubmitAvailability(c.Request.Context(), &a)
	if err != nil {
		writeServiceError(c, err, "submit availability")
		return
	}
	WriteJSON(c, http.StatusOK, saved)
}

// ListForGame handles GET /api/availability/:gameId
func (h *AvailabilityHandler) ListForGame(c *gin.Context) {
	gameID, ok := pathID(c, "gameId")
	if !ok {
		return
	}

	list, err := h.availability.ListForGame(c.Request.Context(), gameID)
	if err != nil {
		writeServiceError(c, err, "list availability")
		return
	}
	WriteJSON(c, http.StatusOK, list)
}
