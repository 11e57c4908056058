package model

import "time"

// RoomCode is the human-shareable identifier for joining rooms
type RoomCode string

// RoomStatus represents the current state of a room
type RoomStatus string

const (
	RoomStatusWaiting RoomStatus = "waiting" // Accepting players, no game yet
	RoomStatusPlaying RoomStatus = "playing" // Game in progress
)

// MaxSeats is the maximum number of players in a room
const MaxSeats = 4

// MinPlayers is the minimum number of seated players required to start
const MinPlayers = 2

// Seat is a player's fixed place around the table. Positions are 1-based,
// assigned in join order, and immutable once taken; position 1 is the host.
type Seat struct {
	PlayerID    PlayerID
	DisplayName string
	Position    int
	JoinedAt    time.Time
}

// Room groups players before and during a game. Status flips from waiting
// to playing exactly once, when the game is created.
type Room struct {
	Code   RoomCode
	HostID PlayerID
	Status RoomStatus
	Seats  []Seat

	// CurrentGame is nil until the host starts the game
	CurrentGame *GameID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Seat returns the seat held by the given player, or nil if not seated
func (r *Room) Seat(playerID PlayerID) *Seat {
	for i := range r.Seats {
		if r.Seats[i].PlayerID == playerID {
			return &r.Seats[i]
		}
	}
	return nil
}

// SeatAt returns the seat at the given 1-based position, or nil
func (r *Room) SeatAt(position int) *Seat {
	for i := range r.Seats {
		if r.Seats[i].Position == position {
			return &r.Seats[i]
		}
	}
	return nil
}

// IsFull reports whether the room has reached its seat cap
func (r *Room) IsFull() bool {
	return len(r.Seats) >= MaxSeats
}
