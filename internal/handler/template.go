package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frogcrew/api/internal/model"
	"github.com/frogcrew/api/internal/service"
)

// TemplateHandler handles crew template endpoints
type TemplateHandler struct {
	templates *service.TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templates *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

// CreateTemplate handles POST /api/template
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var t model.Template
	if !bind(c, &t, false) {
		return
	}

	created, err := h.templates.CreateTemplate(c.Request.Context(), &t)
	if err != nil {
		writeServiceError(c, err, "create template")
		return
	}
	WriteJSON(c, http.StatusOK, created)
}

// ListTemplates handles GET /api/template
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templates.ListTemplates(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "list templates")
		return
	}
	WriteJSON(c, http.StatusOK, templates)
}

// GetTemplate handles GET /api/template/:templateId
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id, ok := pathID(c, "templateId")
	if !ok {
		return
	}

	t, err := h.templates.GetTemplate(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "get template")
		return
	}
	WriteJSON(c, http.StatusOK, t)
}

// DeleteTemplate handles DELETE /api/template/:templateId
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id, ok := pathID(c, "templateId")
	if !ok {
		return
	}

	if err := h.templates.DeleteTemplate(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "delete template")
		return
	}
	WriteMessage(c, "Template deleted successfully")
}
