package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case Room:
		o.printRoom(v)
	case GameState:
		o.printGameState(v)
	case StartResult:
		o.printStartResult(v)
	case PlayResult:
		o.printPlayResult(v)
	case DrawResult:
		o.printDrawResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// Seat response type
type Seat struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Position    int    `json:"position"`
}

// Room response type
type Room struct {
	Code        string  `json:"code"`
	HostID      string  `json:"host_id"`
	Status      string  `json:"status"`
	Seats       []Seat  `json:"seats"`
	CurrentGame *string `json:"current_game"`
}

// Card response type
type Card struct {
	ID    string `json:"id"`
	Color string `json:"color"`
	Value string `json:"value"`
}

// SeatState response type
type SeatState struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Position    int    `json:"position"`
	CardCount   int    `json:"card_count"`
}

// GameState response type
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

// StartResult response type
type StartResult struct {
	GameID              string `json:"game_id"`
	CurrentTurnPosition int    `json:"current_turn_position"`
	Direction           string `json:"direction"`
}

// PlayResult response type
type PlayResult struct {
	Played              Card   `json:"played"`
	CurrentTurnPosition int    `json:"current_turn_position"`
	Direction           string `json:"direction"`
	PendingDraw         int    `json:"pending_draw"`
	WildFreePlay        bool   `json:"wild_free_play"`
}

// DrawResult response type
type DrawResult struct {
	Drawn               []Card `json:"drawn"`
	CurrentTurnPosition int    `json:"current_turn_position"`
	PendingDraw         int    `json:"pending_draw"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printRoom(r Room) {
	fmt.Printf("Room: %s\n", r.Code)
	fmt.Printf("Status: %s\n", r.Status)
	if r.CurrentGame != nil {
		fmt.Printf("Current Game: %s\n", *r.CurrentGame)
	}
	fmt.Printf("Seats (%d):\n", len(r.Seats))
	for _, s := range r.Seats {
		hostStr := ""
		if s.PlayerID == r.HostID {
			hostStr = " [host]"
		}
		fmt.Printf("  %d. %s (%s)%s\n", s.Position, s.DisplayName, s.PlayerID, hostStr)
	}
}

func cardLabel(c Card) string {
	if c.Color == "wild" {
		return c.Value
	}
	return c.Color + " " + c.Value
}

func (o *Output) printGameState(g GameState) {
	fmt.Printf("Game: %s (room %s)\n", g.ID, g.RoomCode)
	fmt.Printf("Status: %s\n", g.Status)
	fmt.Printf("Turn: position %d (%s)\n", g.CurrentTurnPosition, g.Direction)
	fmt.Printf("Discard Top: %s\n", cardLabel(g.DiscardTop))

	if g.PendingDraw > 0 {
		fmt.Printf("Pending Draw: %d\n", g.PendingDraw)
	}
	if g.WildFreePlay {
		fmt.Println("Wild Free Play: any card may be played this turn")
	}

	fmt.Println("Seats:")
	for _, s := range g.Seats {
		marker := " "
		if s.Position == g.CurrentTurnPosition {
			marker = "*"
		}
		fmt.Printf(" %s %d. %s - %d cards\n", marker, s.Position, s.DisplayName, s.CardCount)
	}

	if len(g.Hand) > 0 {
		fmt.Println("\nYour Hand:")
		for _, c := range g.Hand {
			fmt.Printf("  %-16s %s\n", cardLabel(c), c.ID)
		}
	}
}

func (o *Output) printStartResult(s StartResult) {
	fmt.Printf("Game started: %s\n", s.GameID)
	fmt.Printf("Turn: position %d (%s)\n", s.CurrentTurnPosition, s.Direction)
}

func (o *Output) printPlayResult(p PlayResult) {
	fmt.Printf("Played: %s\n", cardLabel(p.Played))
	fmt.Printf("Next Turn: position %d (%s)\n", p.CurrentTurnPosition, p.Direction)
	if p.PendingDraw > 0 {
		fmt.Printf("Pending Draw: %d\n", p.PendingDraw)
	}
	if p.WildFreePlay {
		fmt.Println("Wild Free Play: the next card may be anything")
	}
}

func (o *Output) printDrawResult(d DrawResult) {
	labels := make([]string, len(d.Drawn))
	for i, c := range d.Drawn {
		labels[i] = cardLabel(c)
	}
	fmt.Printf("Drew %d: %s\n", len(d.Drawn), strings.Join(labels, ", "))
	fmt.Printf("Next Turn: position %d\n", d.CurrentTurnPosition)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
