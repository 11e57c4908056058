package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameStatus represents the lifecycle state of a game
type GameStatus string

const (
	GameStatusActive   GameStatus = "active"
	GameStatusFinished GameStatus = "finished" // Terminal; rejects all actions
)

// Direction is the order in which turns proceed around the table
type Direction string

const (
	DirectionClockwise        Direction = "clockwise"
	DirectionCounterclockwise Direction = "counterclockwise"
)

// Reversed returns the opposite direction
func (d Direction) Reversed() Direction {
	if d == DirectionClockwise {
		return DirectionCounterclockwise
	}
	return DirectionClockwise
}

// DeckSize is the number of cards in a standard deck
const DeckSize = 108

// HandSize is the number of cards dealt to each player at game start
const HandSize = 7

// Game is the authoritative state of one game. A game is created once per
// room when the host starts it and is never deleted, only marked finished.
type Game struct {
	ID       GameID
	RoomCode RoomCode
	Status   GameStatus

	// Turn management
	CurrentTurnPosition int // 1-based seat position whose turn it is
	Direction           Direction

	// PendingDraw is the accumulated forced draw from unanswered
	// draw-two / wild-draw-four chains. Cleared only by a draw action.
	PendingDraw int

	// WildFreePlay is true for exactly one turn after any wild card is
	// played: the very next play is exempt from color/value matching.
	WildFreePlay bool

	// DrawPileCount is the draw pile size snapshot at creation (108).
	DrawPileCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}
