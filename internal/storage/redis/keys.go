package redis

import (
	"fmt"

	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "uno"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// registeredPlayerKey returns the Redis key for a RegisteredPlayer
func registeredPlayerKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:registered_player:%s", keyPrefix, playerID)
}

// usernameIndexKey returns the Redis key for the username -> player_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// roomKey returns the Redis key for a Room
func roomKey(code model.RoomCode) string {
	return fmt.Sprintf("%s:room:%s", keyPrefix, code)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gameForRoomIndexKey returns the Redis key for the room_code -> game_id index
func gameForRoomIndexKey(code model.RoomCode) string {
	return fmt.Sprintf("%s:idx:game_for_room:%s", keyPrefix, code)
}

// cardKey returns the Redis key for a Card
func cardKey(gameID model.GameID, cardID model.CardID) string {
	return fmt.Sprintf("%s:card:%s:%s", keyPrefix, gameID, cardID)
}

// cardsForGameIndexKey returns the Redis key for the SET of a game's card ids
func cardsForGameIndexKey(gameID model.GameID) string {
	return fmt.Sprintf("%s:idx:cards_for_game:%s", keyPrefix, gameID)
}
