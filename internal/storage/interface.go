package storage

import (
	"context"

	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"
)

// Storage defines the interface for data persistence.
//
// Implementations must return independent snapshots from read operations:
// mutating a returned value must not change stored state until it is saved
// back. The game engine relies on this when deciding transitions under its
// per-game lock.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)

	// Registered player operations
	SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error
	GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error)
	GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error)

	// Room operations. CreateRoom is a unique insert: it fails with
	// model.ErrRoomCodeTaken when the code is already in use.
	CreateRoom(ctx context.Context, room *model.Room) error
	SaveRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error)

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	GetGameByRoom(ctx context.Context, code model.RoomCode) (*model.Game, error)

	// Card operations. Piles come back ordered by ascending position.
	SaveCards(ctx context.Context, cards []*model.Card) error
	GetCard(ctx context.Context, gameID model.GameID, cardID model.CardID) (*model.Card, error)
	GetHand(ctx context.Context, gameID model.GameID, playerID model.PlayerID) ([]*model.Card, error)
	GetPile(ctx context.Context, gameID model.GameID, location model.CardLocation) ([]*model.Card, error)
	CountHands(ctx context.Context, gameID model.GameID) (map[model.PlayerID]int, error)
}
