package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	// Room events
	EventPlayerJoined EventType = "player_joined"
	EventGameStarted  EventType = "game_started"

	// Game events
	EventCardPlayed EventType = "card_played"
	EventCardDrawn  EventType = "card_drawn"

	// EventStateChanged is the generic "game state changed" signal emitted
	// once per committed transition so observers can refresh
	EventStateChanged EventType = "state_changed"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType
	Timestamp time.Time
	RoomCode  RoomCode
	GameID    GameID   // Empty for room-only events
	PlayerID  PlayerID // The player who triggered the event
	Payload   any      // Type-specific data
}

// PlayerJoinedPayload contains data for player joined events
type PlayerJoinedPayload struct {
	PlayerID    PlayerID
	DisplayName string
	Position    int
}

// GameStartedPayload contains data for game started events
type GameStartedPayload struct {
	GameID      GameID
	PlayerCount int
}

// CardPlayedPayload contains data for card played events.
// Only the public face of the played card is included.
type CardPlayedPayload struct {
	PlayerID     PlayerID
	Color        CardColor
	Value        CardValue
	NextPosition int
}

// CardDrawnPayload contains data for card drawn events.
// The drawn cards themselves stay private to the drawer.
type CardDrawnPayload struct {
	PlayerID     PlayerID
	Count        int
	NextPosition int
}
