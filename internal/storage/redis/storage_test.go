package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.GuestPlayerTTL = time.Hour
	cfg.RoomTTL = time.Hour
	cfg.GameTTL = time.Hour
	cfg.CardTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:          "player-1",
		DisplayName: "Alice",
		IsGuest:     false,
		CreatedAt:   time.Now(),
	}

	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.DisplayName, retrieved.DisplayName)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGuestPlayerGetsTTL() {
	player := &model.Player{ID: "guest-1", DisplayName: "Guest", IsGuest: true}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	ttl := s.mini.TTL(playerKey("guest-1"))
	s.Greater(ttl, time.Duration(0))
}

func (s *StorageSuite) TestRegisteredPlayerLookupByUsername() {
	rp := &model.RegisteredPlayer{
		PlayerID:     "player-1",
		Username:     "alice",
		PasswordHash: "hash",
	}
	s.Require().NoError(s.storage.SaveRegisteredPlayer(s.ctx, rp))

	retrieved, err := s.storage.GetRegisteredPlayerByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), retrieved.PlayerID)
}

// Room tests

func (s *StorageSuite) testRoom() *model.Room {
	return &model.Room{
		Code:   "ABC123",
		HostID: "player-1",
		Status: model.RoomStatusWaiting,
		Seats: []model.Seat{
			{PlayerID: "player-1", DisplayName: "Alice", Position: 1},
		},
	}
}

func (s *StorageSuite) TestCreateRoomUniqueInsert() {
	s.Require().NoError(s.storage.CreateRoom(s.ctx, s.testRoom()))

	err := s.storage.CreateRoom(s.ctx, s.testRoom())
	s.ErrorIs(err, model.ErrRoomCodeTaken)
}

func (s *StorageSuite) TestSaveAndGetRoom() {
	room := s.testRoom()
	s.Require().NoError(s.storage.CreateRoom(s.ctx, room))

	room.Status = model.RoomStatusPlaying
	s.Require().NoError(s.storage.SaveRoom(s.ctx, room))

	retrieved, err := s.storage.GetRoom(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(model.RoomStatusPlaying, retrieved.Status)
	s.Len(retrieved.Seats, 1)
}

func (s *StorageSuite) TestGetRoomNotFound() {
	_, err := s.storage.GetRoom(s.ctx, "NOPE")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGameByRoom() {
	game := &model.Game{
		ID:                  "game-1",
		RoomCode:            "ABC123",
		Status:              model.GameStatusActive,
		CurrentTurnPosition: 1,
		Direction:           model.DirectionClockwise,
		DrawPileCount:       model.DeckSize,
	}

	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(model.DirectionClockwise, retrieved.Direction)

	byRoom, err := s.storage.GetGameByRoom(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(game.ID, byRoom.ID)
}

func (s *StorageSuite) TestGetGameByRoomNotFound() {
	_, err := s.storage.GetGameByRoom(s.ctx, "NOPE")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Card tests

func (s *StorageSuite) seedCards() {
	cards := []*model.Card{
		{ID: "c1", GameID: "game-1", Color: model.ColorRed, Value: model.ValueFive, Location: model.LocationDrawPile, Position: 2},
		{ID: "c2", GameID: "game-1", Color: model.ColorBlue, Value: model.ValueSkip, Location: model.LocationDrawPile, Position: 1},
		{ID: "c3", GameID: "game-1", Color: model.ColorGreen, Value: model.ValueNine, Location: model.LocationPlayer, OwnerID: "player-1"},
		{ID: "c4", GameID: "game-1", Color: model.ColorYellow, Value: model.ValueTwo, Location: model.LocationDiscardPile, Position: 1},
	}
	s.Require().NoError(s.storage.SaveCards(s.ctx, cards))
}

func (s *StorageSuite) TestGetPileOrdersByPosition() {
	s.seedCards()

	pile, err := s.storage.GetPile(s.ctx, "game-1", model.LocationDrawPile)
	s.Require().NoError(err)
	s.Require().Len(pile, 2)
	s.Equal(model.CardID("c2"), pile[0].ID)
	s.Equal(model.CardID("c1"), pile[1].ID)
}

func (s *StorageSuite) TestGetHand() {
	s.seedCards()

	hand, err := s.storage.GetHand(s.ctx, "game-1", "player-1")
	s.Require().NoError(err)
	s.Require().Len(hand, 1)
	s.Equal(model.CardID("c3"), hand[0].ID)
}

func (s *StorageSuite) TestCountHands() {
	s.seedCards()

	counts, err := s.storage.CountHands(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(map[model.PlayerID]int{"player-1": 1}, counts)
}

func (s *StorageSuite) TestUpdateCardRoundTrip() {
	s.seedCards()

	card, err := s.storage.GetCard(s.ctx, "game-1", "c2")
	s.Require().NoError(err)

	card.Location = model.LocationPlayer
	card.OwnerID = "player-1"
	card.Position = 0
	s.Require().NoError(s.storage.SaveCards(s.ctx, []*model.Card{card}))

	pile, err := s.storage.GetPile(s.ctx, "game-1", model.LocationDrawPile)
	s.Require().NoError(err)
	s.Require().Len(pile, 1)
	s.Equal(model.CardID("c1"), pile[0].ID)

	counts, err := s.storage.CountHands(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(2, counts["player-1"])
}

func (s *StorageSuite) TestGetCardNotFound() {
	_, err := s.storage.GetCard(s.ctx, "game-1", "nope")
	s.ErrorIs(err, model.ErrCardNotFound)
}
