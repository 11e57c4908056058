package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) createPlayer(id, name string) model.Player {
	return model.Player{
		ID:          model.PlayerID(id),
		DisplayName: name,
		IsGuest:     true,
		CreatedAt:   s.app.MockClock.Now(),
	}
}

// playerAt maps a seat position back to the player whose turn it is.
func (s *IntegrationSuite) playerAt(room *model.Room, position int) model.PlayerID {
	seat := room.SeatAt(position)
	s.Require().NotNil(seat)
	return seat.PlayerID
}

// Test: complete flow from room creation through several played turns
func (s *IntegrationSuite) TestCompleteGameFlow() {
	s.app.MockRandom.QueueString("ROOM01")

	// Step 1: Host creates a room
	host := s.createPlayer("host", "Host Player")
	room, err := s.app.RoomController.CreateRoom(s.ctx, host)
	s.Require().NoError(err)
	s.Equal(model.RoomCode("ROOM01"), room.Code)
	s.Equal(model.RoomStatusWaiting, room.Status)

	// Step 2: A second player joins
	player2 := s.createPlayer("player2", "Player Two")
	room, err = s.app.RoomController.JoinRoom(s.ctx, room.Code, player2)
	s.Require().NoError(err)
	s.Len(room.Seats, 2)

	// Step 3: Host starts the game
	game, err := s.app.GameController.StartGame(s.ctx, room.Code, host.ID)
	s.Require().NoError(err)
	s.Equal(model.GameStatusActive, game.Status)
	s.Equal(1, game.CurrentTurnPosition)
	s.Equal(model.DirectionClockwise, game.Direction)

	// Both players see 7 cards in their own hand and a discard top
	for _, p := range []model.Player{host, player2} {
		state, err := s.app.GameController.GetGameState(s.ctx, room.Code, p.ID)
		s.Require().NoError(err)
		s.Len(state.Hand, model.HandSize)
		s.Require().NotNil(state.DiscardTop)
	}

	// Non-players see no hand but the same seat counts
	state, err := s.app.GameController.GetGameState(s.ctx, room.Code, "spectator")
	s.Require().NoError(err)
	s.Empty(state.Hand)
	s.Len(state.Seats, 2)
	for _, seat := range state.Seats {
		s.Equal(model.HandSize, seat.CardCount)
	}

	room, err = s.app.RoomController.GetRoom(s.ctx, room.Code)
	s.Require().NoError(err)
	s.Equal(model.RoomStatusPlaying, room.Status)

	// Step 4: Play ten turns by the table rules: the player whose turn it
	// is plays any legal card from their hand, or draws when stuck.
	plays := 0
	for turn := 0; turn < 10; turn++ {
		st, err := s.app.GameController.GetGameState(s.ctx, room.Code, "")
		s.Require().NoError(err)
		if st.Game.Status != model.GameStatusActive {
			break
		}

		current := s.playerAt(room, st.Game.CurrentTurnPosition)
		view, err := s.app.GameController.GetGameState(s.ctx, room.Code, current)
		s.Require().NoError(err)

		var legal *model.Card
		for _, card := range view.Hand {
			if view.Game.WildFreePlay || card.Matches(view.DiscardTop) {
				legal = card
				break
			}
		}

		if legal != nil {
			result, err := s.app.GameController.PlayCard(s.ctx, room.Code, current, legal.ID)
			s.Require().NoError(err)
			s.Equal(model.LocationDiscardPile, result.Played.Location)
			plays++
		} else {
			_, err := s.app.GameController.DrawCard(s.ctx, room.Code, current)
			s.Require().NoError(err)
		}
	}
	s.Greater(plays, 0)

	// Step 5: Every card is still accounted for across hands and piles
	total := 0
	counts, err := s.app.Storage.CountHands(s.ctx, game.ID)
	s.Require().NoError(err)
	for _, n := range counts {
		total += n
	}
	discard, err := s.app.Storage.GetPile(s.ctx, game.ID, model.LocationDiscardPile)
	s.Require().NoError(err)
	draw, err := s.app.Storage.GetPile(s.ctx, game.ID, model.LocationDrawPile)
	s.Require().NoError(err)
	discarded, err := s.app.Storage.GetPile(s.ctx, game.ID, model.LocationDiscarded)
	s.Require().NoError(err)
	s.Equal(model.DeckSize, total+len(discard)+len(draw)+len(discarded))
}

func (s *IntegrationSuite) TestJoinRejectedOnceGameStarted() {
	s.app.MockRandom.QueueString("ROOM02")

	host := s.createPlayer("host", "Host")
	room, err := s.app.RoomController.CreateRoom(s.ctx, host)
	s.Require().NoError(err)

	_, err = s.app.RoomController.JoinRoom(s.ctx, room.Code, s.createPlayer("p2", "Two"))
	s.Require().NoError(err)

	_, err = s.app.GameController.StartGame(s.ctx, room.Code, host.ID)
	s.Require().NoError(err)

	_, err = s.app.RoomController.JoinRoom(s.ctx, room.Code, s.createPlayer("late", "Late"))
	s.ErrorIs(err, model.ErrGameAlreadyStarted)
}
