package game

import "github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"

// SeatState is the public view of one seated player
type SeatState struct {
	PlayerID    model.PlayerID
	DisplayName string
	Position    int
	CardCount   int
}

// State is one caller's view of a running game: the shared game summary and
// discard top, the caller's own hand, and only card counts for everyone else
type State struct {
	Game       *model.Game
	DiscardTop *model.Card
	Hand       []*model.Card
	Seats      []SeatState
}

// PlayResult describes a committed play-card transition
type PlayResult struct {
	Game   *model.Game
	Played *model.Card
}

// DrawResult describes a committed draw-card transition. Drawn may be
// shorter than the forced count when the draw pile ran out.
type DrawResult struct {
	Game  *model.Game
	Drawn []*model.Card
}
