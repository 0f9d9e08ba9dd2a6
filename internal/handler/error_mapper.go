package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/frogcrew/api/internal/middleware"
	"github.com/frogcrew/api/internal/model"
	"github.com/frogcrew/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewLoginFailedError()
	case errors.Is(err, service.ErrInvalidToken):
		return model.NewUnauthorizedError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrScheduleNotFound),
		errors.Is(err, service.ErrGameNotFound),
		errors.Is(err, service.ErrCrewScheduleNotFound),
		errors.Is(err, service.ErrTemplateNotFound),
		errors.Is(err, service.ErrMemberNotFound):
		// The wrapped message already names the entity and id
		pd := model.NewNotFoundError("")
		pd.Detail = err.Error()
		return pd

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrAvailabilityExists):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 400 =====
	case errors.Is(err, service.ErrUnknownPosition):
		return model.NewValidationError([]model.FieldError{{Field: "position", Message: err.Error()}})
	}

	return nil
}

// writeServiceError maps err and writes it. Unmapped errors are logged and
// reported as a generic 500.
func writeServiceError(c *gin.Context, err error, op string) {
	if pd := MapServiceError(err); pd != nil {
		WriteError(c, pd)
		return
	}

	ctx := c.Request.Context()
	slog.ErrorContext(ctx, op+" failed",
		slog.String("error", err.Error()),
		slog.String("request_id", middleware.GetRequestID(ctx)),
	)
	WriteError(c, model.NewInternalError(""))
}
