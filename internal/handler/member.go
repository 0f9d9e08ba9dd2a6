package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frogcrew/api/internal/model"
	"github.com/frogcrew/api/internal/service"
)

// MemberHandler handles crew member endpoints
type MemberHandler struct {
	members *service.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(members *service.MemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

// CreateMember handles POST /api/crewMember (admin only)
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req model.CreateMemberRequest
	if !bind(c, &req, true) {
		return
	}

	m, err := h.members.CreateMember(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err, "create member")
		return
	}
	WriteJSON(c, http.StatusOK, m)
}

// ListMembers handles GET /api/crewMember
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.members.ListMembers(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "list members")
		return
	}
	WriteJSON(c, http.StatusOK, members)
}

// GetMember handles GET /api/crewMember/:memberId
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, ok := pathID(c, "memberId")
	if !ok {
		return
	}

	m, err := h.members.GetMember(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "get member")
		return
	}
	WriteJSON(c, http.StatusOK, m)
}

// UpdateMember handles PUT /api/crewMember/:memberId (admin only)
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, ok := pathID(c, "memberId")
	if !ok {
		return
	}

	var req model.UpdateMemberRequest
	if !bind(c, &req, true) {
		return
	}

	m, err := h.members.UpdateMember(c.Request.Context(), id, &req)
	if err != nil {
		writeServiceError(c, err, "update member")
		return
	}
	WriteJSON(c, http.StatusOK, m)
}

// DeleteMember handles DELETE /api/crewMember/:memberId (admin only)
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, ok := pathID(c, "memberId")
	if !ok {
		return
	}

	if err := h.members.DeleteMember(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "delete member")
		return
	}
	WriteMessage(c, "Crew member deleted successfully")
}
