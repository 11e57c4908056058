package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/api/middleware"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/services/room"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/sse"
)

// EventsHandler streams room events over SSE
type EventsHandler struct {
	roomController *room.Controller
	hubManager     *sse.HubManager
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(roomController *room.Controller, hubManager *sse.HubManager) *EventsHandler {
	return &EventsHandler{
		roomController: roomController,
		hubManager:     hubManager,
	}
}

// Stream handles GET /api/v1/rooms/{code}/events. Blocks for the lifetime
// of the connection.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	// Reject streams for rooms that do not exist
	if _, err := h.roomController.GetRoom(r.Context(), code); err != nil {
		WriteError(w, err)
		return
	}

	hub := h.hubManager.GetOrCreateHub(code)
	sse.ServeSSE(w, r, hub, player.ID)
}
