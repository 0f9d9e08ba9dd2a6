package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frogcrew/api/internal/model"
	"github.com/frogcrew/api/internal/service"
)

// InvitationHandler handles crew invitations
type InvitationHandler struct {
	invitations *service.InvitationService
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(invitations *service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitations: invitations}
}

// Invite handles POST /api/invite (admin only)
func (h *InvitationHandler) Invite(c *gin.Context) {
	var req model.InviteRequest
	if !bind(c, &req, true) {
		return
	}

	sent, err := h.invitations.SendInvitations(c.Request.Context(), req.Emails)
	if err != nil {
		writeServiceError(c, err, "send invitations")
		return
	}
	WriteJSON(c, http.StatusOK, sent)
}
