package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Reads return copies so callers always work on a snapshot.
type Storage struct {
	mu sync.RWMutex

	players           map[model.PlayerID]*model.Player
	registeredPlayers map[model.PlayerID]*model.RegisteredPlayer
	usernameIndex     map[string]model.PlayerID
	rooms             map[model.RoomCode]*model.Room
	games             map[model.GameID]*model.Game
	gamesByRoom       map[model.RoomCode]model.GameID
	cards             map[cardKey]*model.Card
}

type cardKey struct {
	gameID model.GameID
	cardID model.CardID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:           make(map[model.PlayerID]*model.Player),
		registeredPlayers: make(map[model.PlayerID]*model.RegisteredPlayer),
		usernameIndex:     make(map[string]model.PlayerID),
		rooms:             make(map[model.RoomCode]*model.Room),
		games:             make(map[model.GameID]*model.Game),
		gamesByRoom:       make(map[model.RoomCode]model.GameID),
		cards:             make(map[cardKey]*model.Card),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := *player
	s.players[player.ID] = &p
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	p := *player
	return &p, nil
}

// Registered player operations

func (s *Storage) SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := *rp
	s.registeredPlayers[rp.PlayerID] = &r
	s.usernameIndex[rp.Username] = rp.PlayerID
	return nil
}

func (s *Storage) GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rp, ok := s.registeredPlayers[playerID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	r := *rp
	return &r, nil
}

func (s *Storage) GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	playerID, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	rp, ok := s.registeredPlayers[playerID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	r := *rp
	return &r, nil
}

// Room operations

func (s *Storage) CreateRoom(ctx context.Context, room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[room.Code]; ok {
		return model.ErrRoomCodeTaken
	}
	s.rooms[room.Code] = copyRoom(room)
	return nil
}

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.Code] = copyRoom(room)
	return nil
}

func (s *Storage) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[code]
	if !ok {
		return nil, model.ErrRoomNotFound
	}
	return copyRoom(room), nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := *game
	s.games[game.ID] = &g
	s.gamesByRoom[game.RoomCode] = game.ID
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	g := *game
	return &g, nil
}

func (s *Storage) GetGameByRoom(ctx context.Context, code model.RoomCode) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.gamesByRoom[code]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	g := *game
	return &g, nil
}

// Card operations

func (s *Storage) SaveCards(ctx context.Context, cards []*model.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, card := range cards {
		c := *card
		s.cards[cardKey{card.GameID, card.ID}] = &c
	}
	return nil
}

func (s *Storage) GetCard(ctx context.Context, gameID model.GameID, cardID model.CardID) (*model.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	card, ok := s.cards[cardKey{gameID, cardID}]
	if !ok {
		return nil, model.ErrCardNotFound
	}
	c := *card
	return &c, nil
}

func (s *Storage) GetHand(ctx context.Context, gameID model.GameID, playerID model.PlayerID) ([]*model.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var hand []*model.Card
	for key, card := range s.cards {
		if key.gameID == gameID && card.InHandOf(playerID) {
			c := *card
			hand = append(hand, &c)
		}
	}
	// Map iteration order is random; give callers something stable
	sort.Slice(hand, func(i, j int) bool { return hand[i].ID < hand[j].ID })
	return hand, nil
}

func (s *Storage) GetPile(ctx context.Context, gameID model.GameID, location model.CardLocation) ([]*model.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var pile []*model.Card
	for key, card := range s.cards {
		if key.gameID == gameID && card.Location == location {
			c := *card
			pile = append(pile, &c)
		}
	}
	sort.Slice(pile, func(i, j int) bool { return pile[i].Position < pile[j].Position })
	return pile, nil
}

func (s *Storage) CountHands(ctx context.Context, gameID model.GameID) (map[model.PlayerID]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[model.PlayerID]int)
	for key, card := range s.cards {
		if key.gameID == gameID && card.Location == model.LocationPlayer {
			counts[card.OwnerID]++
		}
	}
	return counts, nil
}

func copyRoom(room *model.Room) *model.Room {
	r := *room
	r.Seats = make([]model.Seat, len(room.Seats))
	copy(r.Seats, room.Seats)
	if room.CurrentGame != nil {
		id := *room.CurrentGame
		r.CurrentGame = &id
	}
	return &r
}
