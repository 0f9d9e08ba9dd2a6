package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/frogcrew/api/internal/middleware"
	"github.com/frogcrew/api/internal/model"
	"github.com/frogcrew/api/internal/service"
)

// EventsHandler handles SSE event streaming
type EventsHandler struct {
	eventHub *service.EventHub
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(eventHub *service.EventHub) *EventsHandler {
	return &EventsHandler{eventHub: eventHub}
}

// Stream handles GET /api/events. It streams schedule and crew changes to
// the signed-in member until the client disconnects.
func (h *EventsHandler) Stream(c *gin.Context) {
	memberID := middleware.GetMemberID(c.Request.Context())
	if memberID == 0 {
		WriteError(c, model.NewUnauthorizedError("authentication required"))
		return
	}

	// The server's WriteTimeout would otherwise cut the stream off. Recorders
	// in tests do not support deadlines, which is fine.
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	w := c.Writer
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering
	w.WriteHeader(http.StatusOK)

	subscriberID := uuid.New().String()
	sub := h.eventHub.Subscribe(memberID, subscriberID)
	defer h.eventHub.Unsubscribe(subscriberID)

	fmt.Fprintf(w, "event: connected\ndata: {\"subscriberId\":\"%s\"}\n\n", subscriberID)
	w.Flush()

	for {
		select {
		case event, ok := <-sub.Events:
			if !ok {
				return
			}
			fmt.Fprint(w, event.Format())
			w.Flush()

		case <-sub.Done:
			return

		case <-c.Request.Context().Done():
			// Client disconnected
			return
		}
	}
}
