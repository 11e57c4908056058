package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/api/middleware"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/api/response"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/services/room"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/sse"
)

// RoomHandler handles room-related endpoints
type RoomHandler struct {
	roomController *room.Controller
	broadcaster    *sse.Broadcaster
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomController *room.Controller, broadcaster *sse.Broadcaster) *RoomHandler {
	return &RoomHandler{
		roomController: roomController,
		broadcaster:    broadcaster,
	}
}

// Create handles POST /api/v1/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	created, err := h.roomController.CreateRoom(r.Context(), *player)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RoomFromModel(created))
}

// Get handles GET /api/v1/rooms/{code}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := model.RoomCode(mux.Vars(r)["code"])

	found, err := h.roomController.GetRoom(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(found))
}

// Join handles POST /api/v1/rooms/{code}/join
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	joined, err := h.roomController.JoinRoom(r.Context(), code, *player)
	if err != nil {
		WriteError(w, err)
		return
	}

	seat := joined.Seat(player.ID)
	h.broadcaster.BroadcastPlayerJoined(code, player.ID, player.DisplayName, seat.Position)
	h.broadcaster.BroadcastStateChanged(code)

	response.JSON(w, http.StatusOK, response.RoomFromModel(joined))
}
