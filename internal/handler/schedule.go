package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frogcrew/api/internal/model"
	"github.com/frogcrew/api/internal/service"
)

// GameScheduleHandler handles game schedule and game endpoints
type GameScheduleHandler struct {
	games *service.GameScheduleService
}

// NewGameScheduleHandler creates a new game schedule handler
func NewGameScheduleHandler(games *service.GameScheduleService) *GameScheduleHandler {
	return &GameScheduleHandler{games: games}
}

// CreateSchedule handles POST /api/gameSchedule
func (h *GameScheduleHandler) CreateSchedule(c *gin.Context) {
	var schedule model.GameSchedule
	if !bind(c, &schedule, false) {
		return
	}

	created, err := h.games.CreateSchedule(c.Request.Context(), &schedule)
	if err != nil {
		writeServiceError(c, err, "create schedule")
		return
	}
	WriteJSON(c, http.StatusOK, created)
}

// ListSchedules handles GET /api/gameSchedule
func (h *GameScheduleHandler) ListSchedules(c *gin.Context) {
	schedules, err := h.games.ListSchedules(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "list schedules")
		return
	}
	WriteJSON(c, http.StatusOK, schedules)
}

// GetSchedule handles GET /api/gameSchedule/:scheduleId
func (h *GameScheduleHandler) GetSchedule(c *gin.Context) {
	id, ok := pathID(c, "scheduleId")
	if !ok {
		return
	}

	schedule, err := h.games.GetSchedule(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "get schedule")
		return
	}
	WriteJSON(c, http.StatusOK, schedule)
}

// DeleteSchedule handles DELETE /api/gameSchedule/:scheduleId
func (h *GameScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, ok := pathID(c, "scheduleId")
	if !ok {
		return
	}

	if err := h.games.DeleteSchedule(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "delete schedule")
		return
	}
	WriteMessage(c, "Schedule deleted successfully")
}

// AddGames handles POST /api/gameSchedule/:scheduleId/games. The body is a
// JSON array of games.
func (h *GameScheduleHandler) AddGames(c *gin.Context) {
	id, ok := pathID(c, "scheduleId")
	if !ok {
		return
	}

	var games []model.Game
	if err := DecodeEntity(c, &games); err != nil {
		WriteError(c, bodyError(err))
		return
	}
	for i := range games {
		games[i].Normalize()
	}
	if errs := model.ValidateEach(games); len(errs) > 0 {
		WriteError(c, model.NewValidationError(errs))
		return
	}

	schedule, err := h.games.AddGamesToSchedule(c.Request.Context(), id, games)
	if err != nil {
		writeServiceError(c, err, "add games")
		return
	}
	WriteJSON(c, http.StatusOK, schedule)
}

// GetAllGames handles GET /api/gameSchedule/games
func (h *GameScheduleHandler) GetAllGames(c *gin.Context) {
	games, err := h.games.GetAllGames(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "list games")
		return
	}
	WriteJSON(c, http.StatusOK, games)
}

// GetGame handles GET /api/gameSchedule/games/:gameId
func (h *GameScheduleHandler) GetGame(c *gin.Context) {
	id, ok := pathID(c, "gameId")
	if !ok {
		return
	}

	game, err := h.games.GetGame(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "get game")
		return
	}
	WriteJSON(c, http.StatusOK, game)
}

// UpdateGame handles PUT /api/gameSchedule/games/:gameId
func (h *GameScheduleHandler) UpdateGame(c *gin.Context) {
	id, ok := pathID(c, "gameId")
	if !ok {
		return
	}

	var req model.UpdateGameRequest
	if !bind(c, &req, false) {
		return
	}

	game, err := h.games.UpdateGame(c.Request.Context(), id, &req)
	if err != nil {
		writeServiceError(c, err, "update game")
		return
	}
	WriteJSON(c, http.StatusOK, game)
}

// DeleteGame handles DELETE /api/gameSchedule/games/:gameId
func (h *GameScheduleHandler) DeleteGame(c *gin.Context) {
	id, ok := pathID(c, "gameId")
	if !ok {
		return
	}

	if err := h.games.DeleteGame(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "delete game")
		return
	}
	WriteMessage(c, "Game deleted successfully")
}
