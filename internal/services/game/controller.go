package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/deck"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/dependencies/clock"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/dependencies/random"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/services/guard"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/storage"
)

// Controller drives the game state machine: starting a game and applying
// play-card / draw-card transitions. Every transition runs under the room's
// exclusive lock, reading and writing within one critical section, so
// concurrent actions against the same game serialize cleanly.
type Controller struct {
	storage storage.Storage
	guard   *guard.Guard
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	guard *guard.Guard,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		guard:   guard,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// StartGame creates the room's game: builds and deals the deck, then flips
// the room to playing. Only the host may start, the room must still be
// waiting, and at least two players must be seated.
//
// Writes are ordered so the room status flip comes last: until it lands,
// other players still see a waiting room, so a failure partway through
// never exposes a half-initialized game.
func (c *Controller) StartGame(ctx context.Context, code model.RoomCode, requester model.PlayerID) (*model.Game, error) {
	unlock := c.guard.Lock(string(code))
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	if room.HostID != requester {
		return nil, model.ErrNotHost
	}
	if room.Status != model.RoomStatusWaiting {
		return nil, model.ErrGameAlreadyStarted
	}
	if len(room.Seats) < model.MinPlayers {
		return nil, model.ErrInsufficientPlayers
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:                  model.GameID(uuid.NewString()),
		RoomCode:            code,
		Status:              model.GameStatusActive,
		CurrentTurnPosition: 1,
		Direction:           model.DirectionClockwise,
		PendingDraw:         0,
		WildFreePlay:        false,
		DrawPileCount:       model.DeckSize,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	cards := deck.Build(game.ID, c.random)
	if err := deck.Deal(cards, room.Seats); err != nil {
		return nil, err
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	if err := c.storage.SaveCards(ctx, cards); err != nil {
		return nil, err
	}

	gameID := game.ID
	room.Status = model.RoomStatusPlaying
	room.CurrentGame = &gameID
	room.UpdatedAt = now
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	c.logger.Info("game started",
		slog.String("game_id", string(game.ID)),
		slog.String("room_code", string(code)),
		slog.Int("player_count", len(room.Seats)),
	)

	return game, nil
}

// PlayCard applies a play-card transition for the requester's named card.
// The card must be in the requester's hand and playable on the discard top
// under the matching rule, unless the previous play was a wild card, which
// makes this one play unconditionally legal.
func (c *Controller) PlayCard(ctx context.Context, code model.RoomCode, requester model.PlayerID, cardID model.CardID) (*PlayResult, error) {
	unlock := c.guard.Lock(string(code))
	defer unlock()

	room, game, err := c.loadActiveGame(ctx, code)
	if err != nil {
		return nil, err
	}

	seat := room.Seat(requester)
	if seat == nil {
		return nil, model.ErrNotInGame
	}
	if seat.Position != game.CurrentTurnPosition {
		return nil, model.ErrNotYourTurn
	}

	card, err := c.storage.GetCard(ctx, game.ID, cardID)
	if errors.Is(err, model.ErrCardNotFound) {
		return nil, model.ErrCardNotInHand
	}
	if err != nil {
		return nil, err
	}
	if !card.InHandOf(requester) {
		return nil, model.ErrCardNotInHand
	}

	top, err := c.discardTop(ctx, game.ID)
	if err != nil {
		return nil, err
	}

	if !game.WildFreePlay && !card.Matches(top) {
		return nil, model.ErrCardNotPlayable
	}

	// The old top leaves pile bookkeeping for good
	top.Location = model.LocationDiscarded
	top.Position = 0

	card.Location = model.LocationDiscardPile
	card.OwnerID = ""
	card.Position = 1

	game.WildFreePlay = card.Color == model.ColorWild

	skip := false
	switch card.Value {
	case model.ValueDrawTwo:
		game.PendingDraw += 2
	case model.ValueWildDrawFour:
		game.PendingDraw += 4
	case model.ValueSkip:
		skip = true
	case model.ValueReverse:
		// Direction flips before the next turn is computed
		game.Direction = game.Direction.Reversed()
	}

	next := nextPosition(game.CurrentTurnPosition, len(room.Seats), game.Direction)
	if skip {
		next = nextPosition(next, len(room.Seats), game.Direction)
	}
	game.CurrentTurnPosition = next
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveCards(ctx, []*model.Card{top, card}); err != nil {
		return nil, err
	}
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("card played",
		slog.String("game_id", string(game.ID)),
		slog.String("player_id", string(requester)),
		slog.String("color", string(card.Color)),
		slog.String("value", string(card.Value)),
		slog.Int("next_position", game.CurrentTurnPosition),
	)

	return &PlayResult{Game: game, Played: card}, nil
}

// DrawCard applies a draw-card transition: the requester takes pending_draw
// cards if a forced draw is outstanding, otherwise one, always from the low
// end of the draw pile. An exhausted pile stops the draw early rather than
// failing. The turn then advances exactly once and the forced draw clears.
func (c *Controller) DrawCard(ctx context.Context, code model.RoomCode, requester model.PlayerID) (*DrawResult, error) {
	unlock := c.guard.Lock(string(code))
	defer unlock()

	room, game, err := c.loadActiveGame(ctx, code)
	if err != nil {
		return nil, err
	}

	seat := room.Seat(requester)
	if seat == nil {
		return nil, model.ErrNotInGame
	}
	if seat.Position != game.CurrentTurnPosition {
		return nil, model.ErrNotYourTurn
	}

	count := 1
	if game.PendingDraw > 0 {
		count = game.PendingDraw
	}

	pile, err := c.storage.GetPile(ctx, game.ID, model.LocationDrawPile)
	if err != nil {
		return nil, err
	}
	if count > len(pile) {
		count = len(pile)
	}

	drawn := pile[:count]
	for _, card := range drawn {
		card.Location = model.LocationPlayer
		card.OwnerID = requester
		card.Position = 0
	}

	game.CurrentTurnPosition = nextPosition(game.CurrentTurnPosition, len(room.Seats), game.Direction)
	game.PendingDraw = 0
	game.UpdatedAt = c.clock.Now()

	if len(drawn) > 0 {
		if err := c.storage.SaveCards(ctx, drawn); err != nil {
			return nil, err
		}
	}
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("cards drawn",
		slog.String("game_id", string(game.ID)),
		slog.String("player_id", string(requester)),
		slog.Int("count", len(drawn)),
		slog.Int("next_position", game.CurrentTurnPosition),
	)

	return &DrawResult{Game: game, Drawn: drawn}, nil
}

// GetGameState assembles the requester's view of the room's game: summary,
// discard top, the requester's full hand, and card counts per seat. Taken
// under the room's lock so the view is a committed snapshot, never a
// mid-transition read.
func (c *Controller) GetGameState(ctx context.Context, code model.RoomCode, requester model.PlayerID) (*State, error) {
	unlock := c.guard.Lock(string(code))
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.Status == model.RoomStatusWaiting {
		return nil, model.ErrGameNotStarted
	}
	if room.CurrentGame == nil {
		return nil, model.ErrGameNotFound
	}

	game, err := c.storage.GetGame(ctx, *room.CurrentGame)
	if err != nil {
		return nil, err
	}

	top, err := c.discardTop(ctx, game.ID)
	if err != nil {
		return nil, err
	}

	hand, err := c.storage.GetHand(ctx, game.ID, requester)
	if err != nil {
		return nil, err
	}

	counts, err := c.storage.CountHands(ctx, game.ID)
	if err != nil {
		return nil, err
	}

	seats := make([]SeatState, len(room.Seats))
	for i, seat := range room.Seats {
		seats[i] = SeatState{
			PlayerID:    seat.PlayerID,
			DisplayName: seat.DisplayName,
			Position:    seat.Position,
			CardCount:   counts[seat.PlayerID],
		}
	}

	return &State{
		Game:       game,
		DiscardTop: top,
		Hand:       hand,
		Seats:      seats,
	}, nil
}

// loadActiveGame resolves a room code to its room and active game for a
// mutating transition. Callers already hold the room's lock.
func (c *Controller) loadActiveGame(ctx context.Context, code model.RoomCode) (*model.Room, *model.Game, error) {
	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	if room.Status != model.RoomStatusPlaying || room.CurrentGame == nil {
		return nil, nil, model.ErrGameNotActive
	}

	game, err := c.storage.GetGame(ctx, *room.CurrentGame)
	if err != nil {
		return nil, nil, err
	}
	if game.Status != model.GameStatusActive {
		return nil, nil, model.ErrGameNotActive
	}

	return room, game, nil
}

// discardTop fetches the single card in the discard pile
func (c *Controller) discardTop(ctx context.Context, gameID model.GameID) (*model.Card, error) {
	pile, err := c.storage.GetPile(ctx, gameID, model.LocationDiscardPile)
	if err != nil {
		return nil, err
	}
	if len(pile) == 0 {
		return nil, fmt.Errorf("game %s has no discard card", gameID)
	}
	return pile[0], nil
}

// Interface for dependency injection
type ControllerInterface interface {
	StartGame(ctx context.Context, code model.RoomCode, requester model.PlayerID) (*model.Game, error)
	PlayCard(ctx context.Context, code model.RoomCode, requester model.PlayerID, cardID model.CardID) (*PlayResult, error)
	DrawCard(ctx context.Context, code model.RoomCode, requester model.PlayerID) (*DrawResult, error)
	GetGameState(ctx context.Context, code model.RoomCode, requester model.PlayerID) (*State, error)
}

var _ ControllerInterface = (*Controller)(nil)
