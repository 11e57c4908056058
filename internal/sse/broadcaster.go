package sse

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/dependencies/clock"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"
)

// Broadcaster pushes committed transitions to a room's SSE clients as JSON
// events. Handlers call it exactly once per committed transition; a room
// with no open streams is a no-op.
type Broadcaster struct {
	hubManager *HubManager
	clock      clock.Clock
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, clock clock.Clock, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		clock:      clock,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// envelope is the wire shape of every broadcast event
type envelope struct {
	Type      model.EventType `json:"type"`
	RoomCode  model.RoomCode  `json:"room_code"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   any             `json:"payload,omitempty"`
}

// BroadcastPlayerJoined announces a new seat to the room
func (b *Broadcaster) BroadcastPlayerJoined(roomCode model.RoomCode, playerID model.PlayerID, displayName string, position int) {
	b.send(roomCode, model.EventPlayerJoined, playerJoinedPayload{
		PlayerID:    playerID,
		DisplayName: displayName,
		Position:    position,
	})
}

// BroadcastGameStarted announces that the room's game has begun
func (b *Broadcaster) BroadcastGameStarted(roomCode model.RoomCode, gameID model.GameID, playerCount int) {
	b.send(roomCode, model.EventGameStarted, gameStartedPayload{
		GameID:      gameID,
		PlayerCount: playerCount,
	})
}

// BroadcastCardPlayed announces the public face of a played card. Hands stay
// private; clients fetch their own state to see them.
func (b *Broadcaster) BroadcastCardPlayed(roomCode model.RoomCode, playerID model.PlayerID, color model.CardColor, value model.CardValue, nextPosition int) {
	b.send(roomCode, model.EventCardPlayed, cardPlayedPayload{
		PlayerID:     playerID,
		Color:        color,
		Value:        value,
		NextPosition: nextPosition,
	})
}

// BroadcastCardDrawn announces how many cards a player drew, without
// revealing which
func (b *Broadcaster) BroadcastCardDrawn(roomCode model.RoomCode, playerID model.PlayerID, count int, nextPosition int) {
	b.send(roomCode, model.EventCardDrawn, cardDrawnPayload{
		PlayerID:     playerID,
		Count:        count,
		NextPosition: nextPosition,
	})
}

// BroadcastStateChanged is the generic refresh signal for observers that do
// not care which transition committed
func (b *Broadcaster) BroadcastStateChanged(roomCode model.RoomCode) {
	b.send(roomCode, model.EventStateChanged, nil)
}

func (b *Broadcaster) send(roomCode model.RoomCode, eventType model.EventType, payload any) {
	hub := b.hubManager.GetHub(roomCode)
	if hub == nil {
		return
	}

	data, err := json.Marshal(envelope{
		Type:      eventType,
		RoomCode:  roomCode,
		Timestamp: b.clock.Now(),
		Payload:   payload,
	})
	if err != nil {
		b.logger.Error("sse failed to marshal event",
			slog.String("room_code", string(roomCode)),
			slog.String("event_type", string(eventType)),
			slog.Any("error", err))
		return
	}

	hub.BroadcastEvent(string(eventType), string(data))
}

// Wire payloads. These mirror the model event payloads with snake_case
// JSON naming for clients.

type playerJoinedPayload struct {
	PlayerID    model.PlayerID `json:"player_id"`
	DisplayName string         `json:"display_name"`
	Position    int            `json:"position"`
}

type gameStartedPayload struct {
	GameID      model.GameID `json:"game_id"`
	PlayerCount int          `json:"player_count"`
}

type cardPlayedPayload struct {
	PlayerID     model.PlayerID  `json:"player_id"`
	Color        model.CardColor `json:"color"`
	Value        model.CardValue `json:"value"`
	NextPosition int             `json:"next_position"`
}

type cardDrawnPayload struct {
	PlayerID     model.PlayerID `json:"player_id"`
	Count        int            `json:"count"`
	NextPosition int            `json:"next_position"`
}
