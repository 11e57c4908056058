package room

import (
	"context"
	"errors"

	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/dependencies/clock"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/dependencies/random"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/services/guard"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/storage"
)

const (
	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6
	// RoomCodeAlphabet is the characters used in room codes (avoid confusing chars)
	RoomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	// maxCodeAttempts bounds code generation retries on collision
	maxCodeAttempts = 10
)

// Controller manages room lifecycle and seating
type Controller struct {
	storage storage.Storage
	guard   *guard.Guard
	clock   clock.Clock
	random  random.Random
}

// NewController creates a new room Controller
func NewController(
	storage storage.Storage,
	guard *guard.Guard,
	clock clock.Clock,
	random random.Random,
) *Controller {
	return &Controller{
		storage: storage,
		guard:   guard,
		clock:   clock,
		random:  random,
	}
}

// CreateRoom creates a new room with the given player as host, seated at
// position 1. The code is generated randomly; on collision with an existing
// room a fresh code is tried, up to maxCodeAttempts.
func (c *Controller) CreateRoom(ctx context.Context, host model.Player) (*model.Room, error) {
	now := c.clock.Now()

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := model.RoomCode(c.random.String(RoomCodeLength, RoomCodeAlphabet))

		room := &model.Room{
			Code:   code,
			HostID: host.ID,
			Status: model.RoomStatusWaiting,
			Seats: []model.Seat{
				{
					PlayerID:    host.ID,
					DisplayName: host.DisplayName,
					Position:    1,
					JoinedAt:    now,
				},
			},
			CurrentGame: nil,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		err := c.storage.CreateRoom(ctx, room)
		if errors.Is(err, model.ErrRoomCodeTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return room, nil
	}

	return nil, model.ErrRoomCodeExhausted
}

// GetRoom retrieves a room by code
func (c *Controller) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	return c.storage.GetRoom(ctx, code)
}

// JoinRoom seats a player in a waiting room. The seat position is the next
// free 1-based position; positions never change once assigned.
func (c *Controller) JoinRoom(ctx context.Context, code model.RoomCode, player model.Player) (*model.Room, error) {
	unlock := c.guard.Lock(string(code))
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	if room.Status != model.RoomStatusWaiting {
		return nil, model.ErrGameAlreadyStarted
	}

	if room.Seat(player.ID) != nil {
		return nil, model.ErrAlreadyJoined
	}

	if room.IsFull() {
		return nil, model.ErrRoomFull
	}

	room.Seats = append(room.Seats, model.Seat{
		PlayerID:    player.ID,
		DisplayName: player.DisplayName,
		Position:    len(room.Seats) + 1,
		JoinedAt:    c.clock.Now(),
	})
	room.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateRoom(ctx context.Context, host model.Player) (*model.Room, error)
	GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error)
	JoinRoom(ctx context.Context, code model.RoomCode, player model.Player) (*model.Room, error)
}

var _ ControllerInterface = (*Controller)(nil)
