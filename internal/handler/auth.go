package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frogcrew/api/internal/model"
	"github.com/frogcrew/api/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if !bind(c, &req, true) {
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err, "login")
		return
	}

	slog.InfoContext(c.Request.Context(), "member logged in", slog.Uint64("member_id", uint64(resp.Member.ID)))
	WriteJSON(c, http.StatusOK, resp)
}
