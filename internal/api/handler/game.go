package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/api/middleware"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/api/request"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/api/response"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/services/game"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/sse"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
	broadcaster    *sse.Broadcaster
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller, broadcaster *sse.Broadcaster) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		broadcaster:    broadcaster,
	}
}

// Start handles POST /api/v1/rooms/{code}/game
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	started, err := h.gameController.StartGame(r.Context(), code, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	state, err := h.gameController.GetGameState(r.Context(), code, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.BroadcastGameStarted(code, started.ID, len(state.Seats))
	h.broadcaster.BroadcastStateChanged(code)

	response.JSON(w, http.StatusCreated, response.StartGameResponse{
		GameID:              string(started.ID),
		CurrentTurnPosition: started.CurrentTurnPosition,
		Direction:           string(started.Direction),
	})
}

// GetState handles GET /api/v1/rooms/{code}/game
func (h *GameHandler) GetState(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	state, err := h.gameController.GetGameState(r.Context(), code, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromView(state))
}

// Play handles POST /api/v1/rooms/{code}/game/play
func (h *GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	var req request.PlayCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.CardID == "" {
		WriteError(w, NewInvalidRequestError("card_id is required"))
		return
	}

	result, err := h.gameController.PlayCard(r.Context(), code, player.ID, model.CardID(req.CardID))
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.BroadcastCardPlayed(code, player.ID, result.Played.Color, result.Played.Value, result.Game.CurrentTurnPosition)
	h.broadcaster.BroadcastStateChanged(code)

	response.JSON(w, http.StatusOK, response.PlayCardResponse{
		Played:              response.CardFromModel(result.Played),
		CurrentTurnPosition: result.Game.CurrentTurnPosition,
		Direction:           string(result.Game.Direction),
		PendingDraw:         result.Game.PendingDraw,
		WildFreePlay:        result.Game.WildFreePlay,
	})
}

// Draw handles POST /api/v1/rooms/{code}/game/draw
func (h *GameHandler) Draw(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.RoomCode(mux.Vars(r)["code"])

	result, err := h.gameController.DrawCard(r.Context(), code, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.BroadcastCardDrawn(code, player.ID, len(result.Drawn), result.Game.CurrentTurnPosition)
	h.broadcaster.BroadcastStateChanged(code)

	drawn := make([]response.Card, len(result.Drawn))
	for i, c := range result.Drawn {
		drawn[i] = response.CardFromModel(c)
	}

	response.JSON(w, http.StatusOK, response.DrawCardResponse{
		Drawn:               drawn,
		CurrentTurnPosition: result.Game.CurrentTurnPosition,
		PendingDraw:         result.Game.PendingDraw,
	})
}
