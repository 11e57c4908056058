package response

import (
	"time"

	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/services/auth"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/services/game"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// Seat represents a seated player
type Seat struct {
	PlayerID    string    `json:"player_id"`
	DisplayName string    `json:"display_name"`
	Position    int       `json:"position"`
	JoinedAt    time.Time `json:"joined_at"`
}

// SeatFromModel converts model.Seat
func SeatFromModel(s model.Seat) Seat {
	return Seat{
		PlayerID:    string(s.PlayerID),
		DisplayName: s.DisplayName,
		Position:    s.Position,
		JoinedAt:    s.JoinedAt,
	}
}

// Room represents a room in API responses
type Room struct {
	Code        string  `json:"code"`
	HostID      string  `json:"host_id"`
	Status      string  `json:"status"`
	Seats       []Seat  `json:"seats"`
	CurrentGame *string `json:"current_game"`
}

// RoomFromModel converts model.Room
func RoomFromModel(r *model.Room) Room {
	seats := make([]Seat, len(r.Seats))
	for i, s := range r.Seats {
		seats[i] = SeatFromModel(s)
	}

	var currentGame *string
	if r.CurrentGame != nil {
		g := string(*r.CurrentGame)
		currentGame = &g
	}

	return Room{
		Code:        string(r.Code),
		HostID:      string(r.HostID),
		Status:      string(r.Status),
		Seats:       seats,
		CurrentGame: currentGame,
	}
}

// Card represents a card the caller is allowed to see in full
type Card struct {
	ID    string `json:"id"`
	Color string `json:"color"`
	Value string `json:"value"`
}

// CardFromModel converts model.Card
func CardFromModel(c *model.Card) Card {
	return Card{
		ID:    string(c.ID),
		Color: string(c.Color),
		Value: string(c.Value),
	}
}

// SeatState is a seat plus its public card count
type SeatState struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Position    int    `json:"position"`
	CardCount   int    `json:"card_count"`
}

// GameState is the caller's view of a running game. Hand holds only the
// caller's own cards; everyone else appears as a card count.
type GameState struct {
	ID                  string      `json:"id"`
	RoomCode            string      `json:"room_code"`
	Status              string      `json:"status"`
	CurrentTurnPosition int         `json:"current_turn_position"`
	Direction           string      `json:"direction"`
	PendingDraw         int         `json:"pending_draw"`
	WildFreePlay        bool        `json:"wild_free_play"`
	DiscardTop          Card        `json:"discard_top"`
	Hand                []Card      `json:"hand"`
	Seats               []SeatState `json:"seats"`
}

// GameStateFromView converts a game.State
func GameStateFromView(s *game.State) GameState {
	hand := make([]Card, len(s.Hand))
	for i, c := range s.Hand {
		hand[i] = CardFromModel(c)
	}

	seats := make([]SeatState, len(s.Seats))
	for i, seat := range s.Seats {
		seats[i] = SeatState{
			PlayerID:    string(seat.PlayerID),
			DisplayName: seat.DisplayName,
			Position:    seat.Position,
			CardCount:   seat.CardCount,
		}
	}

	return GameState{
		ID:                  string(s.Game.ID),
		RoomCode:            string(s.Game.RoomCode),
		Status:              string(s.Game.Status),
		CurrentTurnPosition: s.Game.CurrentTurnPosition,
		Direction:           string(s.Game.Direction),
		PendingDraw:         s.Game.PendingDraw,
		WildFreePlay:        s.Game.WildFreePlay,
		DiscardTop:          CardFromModel(s.DiscardTop),
		Hand:                hand,
		Seats:               seats,
	}
}

// StartGameResponse is the response after starting a game
type StartGameResponse struct {
	GameID              string `json:"game_id"`
	CurrentTurnPosition int    `json:"current_turn_position"`
	Direction           string `json:"direction"`
}

// PlayCardResponse is the response after a committed play
type PlayCardResponse struct {
	Played              Card   `json:"played"`
	CurrentTurnPosition int    `json:"current_turn_position"`
	Direction           string `json:"direction"`
	PendingDraw         int    `json:"pending_draw"`
	WildFreePlay        bool   `json:"wild_free_play"`
}

// DrawCardResponse is the response after a committed draw
type DrawCardResponse struct {
	Drawn               []Card `json:"drawn"`
	CurrentTurnPosition int    `json:"current_turn_position"`
	PendingDraw         int    `json:"pending_draw"`
}
