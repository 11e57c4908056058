package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Apply TTL only for guest players
	var ttl time.Duration
	if player.IsGuest {
		ttl = s.cfg.GuestPlayerTTL
	}

	return s.client.Set(ctx, playerKey(player.ID), data, ttl).Err()
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// Registered player operations

func (s *Storage) SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error {
	data, err := json.Marshal(rp)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, registeredPlayerKey(rp.PlayerID), data, 0) // No TTL
	pipe.Set(ctx, usernameIndexKey(rp.Username), string(rp.PlayerID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error) {
	data, err := s.client.Get(ctx, registeredPlayerKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var rp model.RegisteredPlayer
	if err := json.Unmarshal(data, &rp); err != nil {
		return nil, err
	}
	return &rp, nil
}

func (s *Storage) GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error) {
	playerIDStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	return s.GetRegisteredPlayer(ctx, model.PlayerID(playerIDStr))
}

// Room operations

func (s *Storage) CreateRoom(ctx context.Context, room *model.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}

	// SETNX gives the unique-insert semantics for code collision detection
	ok, err := s.client.SetNX(ctx, roomKey(room.Code), data, s.cfg.RoomTTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrRoomCodeTaken
	}
	return nil
}

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, roomKey(room.Code), data, s.cfg.RoomTTL).Err()
}

func (s *Storage) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	data, err := s.client.Get(ctx, roomKey(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRoomNotFound
		}
		return nil, err
	}

	var room model.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, gameKey(game.ID), data, s.cfg.GameTTL)
	pipe.Set(ctx, gameForRoomIndexKey(game.RoomCode), string(game.ID), s.cfg.GameTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) GetGameByRoom(ctx context.Context, code model.RoomCode) (*model.Game, error) {
	gameIDStr, err := s.client.Get(ctx, gameForRoomIndexKey(code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	return s.GetGame(ctx, model.GameID(gameIDStr))
}

// Card operations

func (s *Storage) SaveCards(ctx context.Context, cards []*model.Card) error {
	if len(cards) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, card := range cards {
		data, err := json.Marshal(card)
		if err != nil {
			return err
		}
		pipe.Set(ctx, cardKey(card.GameID, card.ID), data, s.cfg.CardTTL)
		pipe.SAdd(ctx, cardsForGameIndexKey(card.GameID), string(card.ID))
	}
	if len(cards) > 0 {
		pipe.Expire(ctx, cardsForGameIndexKey(cards[0].GameID), s.cfg.CardTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) GetCard(ctx context.Context, gameID model.GameID, cardID model.CardID) (*model.Card, error) {
	data, err := s.client.Get(ctx, cardKey(gameID, cardID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCardNotFound
		}
		return nil, err
	}

	var card model.Card
	if err := json.Unmarshal(data, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *Storage) GetHand(ctx context.Context, gameID model.GameID, playerID model.PlayerID) ([]*model.Card, error) {
	cards, err := s.getAllCards(ctx, gameID)
	if err != nil {
		return nil, err
	}

	var hand []*model.Card
	for _, card := range cards {
		if card.InHandOf(playerID) {
			hand = append(hand, card)
		}
	}
	sort.Slice(hand, func(i, j int) bool { return hand[i].ID < hand[j].ID })
	return hand, nil
}

func (s *Storage) GetPile(ctx context.Context, gameID model.GameID, location model.CardLocation) ([]*model.Card, error) {
	cards, err := s.getAllCards(ctx, gameID)
	if err != nil {
		return nil, err
	}

	var pile []*model.Card
	for _, card := range cards {
		if card.Location == location {
			pile = append(pile, card)
		}
	}
	sort.Slice(pile, func(i, j int) bool { return pile[i].Position < pile[j].Position })
	return pile, nil
}

func (s *Storage) CountHands(ctx context.Context, gameID model.GameID) (map[model.PlayerID]int, error) {
	cards, err := s.getAllCards(ctx, gameID)
	if err != nil {
		return nil, err
	}

	counts := make(map[model.PlayerID]int)
	for _, card := range cards {
		if card.Location == model.LocationPlayer {
			counts[card.OwnerID]++
		}
	}
	return counts, nil
}

// getAllCards fetches every card of a game in one pipelined round trip
func (s *Storage) getAllCards(ctx context.Context, gameID model.GameID) ([]*model.Card, error) {
	ids, err := s.client.SMembers(ctx, cardsForGameIndexKey(gameID)).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, cardKey(gameID, model.CardID(id)))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	cards := make([]*model.Card, 0, len(ids))
	for _, cmd := range cmds {
		data, err := cmd.Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Card key expired ahead of the index entry
				continue
			}
			return nil, err
		}
		var card model.Card
		if err := json.Unmarshal(data, &card); err != nil {
			return nil, err
		}
		cards = append(cards, &card)
	}
	return cards, nil
}
