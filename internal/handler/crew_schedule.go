package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/frogcrew/api/internal/model"
	"github.com/frogcrew/api/internal/service"
)

// CrewScheduleHandler handles crew schedule, crew list and crew lookup endpoints
type CrewScheduleHandler struct {
	crews *service.CrewScheduleService
}

// NewCrewScheduleHandler creates a new crew schedule handler
func NewCrewScheduleHandler(crews *service.CrewScheduleService) *CrewScheduleHandler {
	return &CrewScheduleHandler{crews: crews}
}

// CreateCrewSchedule handles POST /api/crewSchedule/:id where id is the game.
// The body is either a CrewSchedule object or a bare array of crewed users.
func (h *CrewScheduleHandler) CreateCrewSchedule(c *gin.Context) {
	gameID, ok := pathID(c, "id")
	if !ok {
		return
	}

	cs, ok := bindCrewSchedule(c)
	if !ok {
		return
	}

	saved, err := h.crews.CreateCrewSchedule(c.Request.Context(), gameID, cs)
	if err != nil {
		writeServiceError(c, err, "create crew schedule")
		return
	}
	WriteJSON(c, http.StatusOK, saved)
}

// AddAssignments handles POST /api/crewSchedule/:id/assignments where id is
// the crew schedule. The body has the same shapes as CreateCrewSchedule.
func (h *CrewScheduleHandler) AddAssignments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	cs, ok := bindCrewSchedule(c)
	if !ok {
		return
	}

	saved, err := h.crews.AddCrewAssignments(c.Request.Context(), id, cs.CrewAssignments)
	if err != nil {
		writeServiceError(c, err, "add crew assignments")
		return
	}
	WriteJSON(c, http.StatusOK, saved)
}

// ApplyTemplate handles POST /api/crewSchedule/:id/template/:templateId
func (h *CrewScheduleHandler) ApplyTemplate(c *gin.Context) {
	gameID, ok := pathID(c, "id")
	if !ok {
		return
	}
	templateID, ok := pathID(c, "templateId")
	if !ok {
		return
	}

	cs, err := h.crews.ApplyTemplate(c.Request.Context(), templateID, gameID)
	if err != nil {
		writeServiceError(c, err, "apply template")
		return
	}
	WriteJSON(c, http.StatusOK, cs)
}

// ListCrewSchedules handles GET /api/crewSchedule/:id
func (h *CrewScheduleHandler) ListCrewSchedules(c *gin.Context) {
	gameID, ok := pathID(c, "id")
	if !ok {
		return
	}

	crews, err := h.crews.ListCrewSchedules(c.Request.Context(), gameID)
	if err != nil {
		writeServiceError(c, err, "list crew schedules")
		return
	}
	WriteJSON(c, http.StatusOK, crews)
}

// DeleteCrewSchedule handles DELETE /api/crewSchedule/schedule/:crewScheduleId
func (h *CrewScheduleHandler) DeleteCrewSchedule(c *gin.Context) {
	id, ok := pathID(c, "crewScheduleId")
	if !ok {
		return
	}

	if err := h.crews.DeleteCrewSchedule(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "delete crew schedule")
		return
	}
	WriteMessage(c, "Crew schedule deleted successfully")
}

// GetCrewList handles GET /api/crewList/:gameId
func (h *CrewScheduleHandler) GetCrewList(c *gin.Context) {
	gameID, ok := pathID(c, "gameId")
	if !ok {
		return
	}

	list, err := h.crews.GetCrewList(c.Request.Context(), gameID)
	if err != nil {
		writeServiceError(c, err, "get crew list")
		return
	}
	WriteJSON(c, http.StatusOK, list)
}

// AvailableCrew handles GET /api/crewedUser/:gameId/:position
func (h *CrewScheduleHandler) AvailableCrew(c *gin.Context) {
	gameID, ok := pathID(c, "gameId")
	if !ok {
		return
	}
	position := strings.ToUpper(c.Param("position"))

	members, err := h.crews.AvailableCrew(c.Request.Context(), gameID, position)
	if err != nil {
		writeServiceError(c, err, "list available crew")
		return
	}
	WriteJSON(c, http.StatusOK, members)
}

// bindCrewSchedule accepts a CrewSchedule object or an array of
// CrewedUserRequest and returns the crew schedule either way
func bindCrewSchedule(c *gin.Context) (*model.CrewSchedule, bool) {
	body, err := readBody(c)
	if err != nil {
		WriteError(c, bodyError(err))
		return nil, false
	}

	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '[' {
		var reqs []model.CrewedUserRequest
		if err := json.Unmarshal(body, &reqs); err != nil {
			WriteError(c, bodyError(err))
			return nil, false
		}
		if errs := model.ValidateEach(reqs); len(errs) > 0 {
			WriteError(c, model.NewValidationError(errs))
			return nil, false
		}
		cs := &model.CrewSchedule{CrewAssignments: make([]model.CrewAssignment, 0, len(reqs))}
		for _, r := range reqs {
			cs.CrewAssignments = append(cs.CrewAssignments, r.ToAssignment())
		}
		return cs, true
	}

	var cs model.CrewSchedule
	if len(body) > 0 {
		if err := json.Unmarshal(body, &cs); err != nil {
			WriteError(c, bodyError(err))
			return nil, false
		}
	}
	cs.Normalize()
	if errs := model.Validate(&cs); len(errs) > 0 {
		WriteError(c, model.NewValidationError(errs))
		return nil, false
	}
	return &cs, true
}
