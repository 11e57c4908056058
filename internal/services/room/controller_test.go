package room

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/dependencies/mocks"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/services/guard"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/storage/memory"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, guard.New(), s.clock, s.random)
	s.ctx = context.Background()
}

func (s *ControllerSuite) createPlayer(id string, name string) model.Player {
	return model.Player{
		ID:          model.PlayerID(id),
		DisplayName: name,
		IsGuest:     true,
		CreatedAt:   s.clock.Now(),
	}
}

// CreateRoom tests

func (s *ControllerSuite) TestCreateRoomSucceeds() {
	s.random.QueueString("ABC234")
	host := s.createPlayer("host-1", "Host")

	room, err := s.controller.CreateRoom(s.ctx, host)
	s.Require().NoError(err)

	s.Equal(model.RoomCode("ABC234"), room.Code)
	s.Equal(model.RoomStatusWaiting, room.Status)
	s.Equal(host.ID, room.HostID)
	s.Require().Len(room.Seats, 1)
	s.Equal(host.ID, room.Seats[0].PlayerID)
	s.Equal(1, room.Seats[0].Position)
	s.Nil(room.CurrentGame)
}

func (s *ControllerSuite) TestCreateRoomIsPersisted() {
	s.random.QueueString("ABC234")
	host := s.createPlayer("host-1", "Host")

	room, _ := s.controller.CreateRoom(s.ctx, host)

	retrieved, err := s.controller.GetRoom(s.ctx, room.Code)
	s.Require().NoError(err)
	s.Equal(room.Code, retrieved.Code)
}

func (s *ControllerSuite) TestCreateRoomRetriesOnCodeCollision() {
	s.random.QueueString("SAME22")
	firstHost := s.createPlayer("host-1", "Host One")
	first, err := s.controller.CreateRoom(s.ctx, firstHost)
	s.Require().NoError(err)

	// Same code again, then a fresh one
	s.random.QueueString("SAME22", "FRESH2")
	secondHost := s.createPlayer("host-2", "Host Two")
	second, err := s.controller.CreateRoom(s.ctx, secondHost)
	s.Require().NoError(err)

	s.Equal(model.RoomCode("SAME22"), first.Code)
	s.Equal(model.RoomCode("FRESH2"), second.Code)
}

func (s *ControllerSuite) TestCreateRoomFailsWhenCodesExhausted() {
	s.random.QueueString("SAME22")
	host := s.createPlayer("host-1", "Host")
	_, err := s.controller.CreateRoom(s.ctx, host)
	s.Require().NoError(err)

	// Every attempt collides; MockRandom returns "" once the queue drains,
	// so keep it stocked with the taken code
	for i := 0; i < maxCodeAttempts; i++ {
		s.random.QueueString("SAME22")
	}
	_, err = s.controller.CreateRoom(s.ctx, s.createPlayer("host-2", "Host Two"))
	s.ErrorIs(err, model.ErrRoomCodeExhausted)
}

// JoinRoom tests

func (s *ControllerSuite) TestJoinRoomSucceeds() {
	s.random.QueueString("ABC234")
	host := s.createPlayer("host-1", "Host")
	room, _ := s.controller.CreateRoom(s.ctx, host)

	player := s.createPlayer("player-1", "Player")
	updated, err := s.controller.JoinRoom(s.ctx, room.Code, player)
	s.Require().NoError(err)

	s.Require().Len(updated.Seats, 2)
	seat := updated.Seat(player.ID)
	s.Require().NotNil(seat)
	s.Equal(2, seat.Position)
	s.Equal("Player", seat.DisplayName)
}

func (s *ControllerSuite) TestJoinRoomAssignsPositionsInJoinOrder() {
	s.random.QueueString("ABC234")
	host := s.createPlayer("host-1", "Host")
	room, _ := s.controller.CreateRoom(s.ctx, host)

	for i, id := range []string{"player-1", "player-2", "player-3"} {
		updated, err := s.controller.JoinRoom(s.ctx, room.Code, s.createPlayer(id, id))
		s.Require().NoError(err)
		s.Equal(i+2, updated.Seat(model.PlayerID(id)).Position)
	}
}

func (s *ControllerSuite) TestJoinRoomFailsIfNotFound() {
	player := s.createPlayer("player-1", "Player")
	_, err := s.controller.JoinRoom(s.ctx, "NOSUCH", player)
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *ControllerSuite) TestJoinRoomFailsIfAlreadySeated() {
	s.random.QueueString("ABC234")
	host := s.createPlayer("host-1", "Host")
	room, _ := s.controller.CreateRoom(s.ctx, host)

	_, err := s.controller.JoinRoom(s.ctx, room.Code, host)
	s.ErrorIs(err, model.ErrAlreadyJoined)
}

func (s *ControllerSuite) TestJoinRoomFailsIfFull() {
	s.random.QueueString("ABC234")
	host := s.createPlayer("host-1", "Host")
	room, _ := s.controller.CreateRoom(s.ctx, host)

	for _, id := range []string{"player-1", "player-2", "player-3"} {
		_, err := s.controller.JoinRoom(s.ctx, room.Code, s.createPlayer(id, id))
		s.Require().NoError(err)
	}

	_, err := s.controller.JoinRoom(s.ctx, room.Code, s.createPlayer("player-4", "Late"))
	s.ErrorIs(err, model.ErrRoomFull)
}

func (s *ControllerSuite) TestJoinRoomFailsOnceGameStarted() {
	s.random.QueueString("ABC234")
	host := s.createPlayer("host-1", "Host")
	room, _ := s.controller.CreateRoom(s.ctx, host)

	stored, _ := s.storage.GetRoom(s.ctx, room.Code)
	stored.Status = model.RoomStatusPlaying
	s.Require().NoError(s.storage.SaveRoom(s.ctx, stored))

	_, err := s.controller.JoinRoom(s.ctx, room.Code, s.createPlayer("player-1", "Player"))
	s.ErrorIs(err, model.ErrGameAlreadyStarted)
}
