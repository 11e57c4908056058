package model

// CardID uniquely identifies a card within a game
type CardID string

// CardColor is the color of a card
type CardColor string

const (
	ColorRed    CardColor = "red"
	ColorYellow CardColor = "yellow"
	ColorGreen  CardColor = "green"
	ColorBlue   CardColor = "blue"
	ColorWild   CardColor = "wild"
)

// Colors lists the four non-wild colors in deck order
var Colors = []CardColor{ColorRed, ColorYellow, ColorGreen, ColorBlue}

// CardValue is the face value of a card. The set is closed: numbers 0-9
// plus the five power values.
type CardValue string

const (
	ValueZero  CardValue = "0"
	ValueOne   CardValue = "1"
	ValueTwo   CardValue = "2"
	ValueThree CardValue = "3"
	ValueFour  CardValue = "4"
	ValueFive  CardValue = "5"
	ValueSix   CardValue = "6"
	ValueSeven CardValue = "7"
	ValueEight CardValue = "8"
	ValueNine  CardValue = "9"

	ValueSkip         CardValue = "skip"
	ValueReverse      CardValue = "reverse"
	ValueDrawTwo      CardValue = "draw_two"
	ValueWild         CardValue = "wild"
	ValueWildDrawFour CardValue = "wild_draw_four"
)

// NumberValues lists the numeric values 0-9 in order
var NumberValues = []CardValue{
	ValueZero, ValueOne, ValueTwo, ValueThree, ValueFour,
	ValueFive, ValueSix, ValueSeven, ValueEight, ValueNine,
}

// IsAction reports whether the value is a colored action card
// (skip, reverse or draw two)
func (v CardValue) IsAction() bool {
	switch v {
	case ValueSkip, ValueReverse, ValueDrawTwo:
		return true
	default:
		return false
	}
}

// IsWild reports whether the value is one of the wild cards
func (v CardValue) IsWild() bool {
	return v == ValueWild || v == ValueWildDrawFour
}

// CardLocation is where a card currently lives
type CardLocation string

const (
	LocationDrawPile    CardLocation = "draw_pile"
	LocationPlayer      CardLocation = "player"
	LocationDiscardPile CardLocation = "discard_pile"
	// LocationDiscarded is terminal: cards that were once the discard top
	// and have since been covered. Only one card is ever in discard_pile.
	LocationDiscarded CardLocation = "discarded"
)

// Card is a single card belonging to exactly one game.
// OwnerID is set iff Location is player. Position is set (>= 1) iff
// Location is draw_pile or discard_pile; it is unique within its pile and
// defines draw order. Position 0 means "not in a pile".
type Card struct {
	ID       CardID
	GameID   GameID
	Color    CardColor
	Value    CardValue
	Location CardLocation
	OwnerID  PlayerID
	Position int
}

// InHandOf reports whether the card is currently held by the given player
func (c *Card) InHandOf(playerID PlayerID) bool {
	return c.Location == LocationPlayer && c.OwnerID == playerID
}

// Matches reports whether the card may be played on top of the given
// discard card under the normal matching rule: same color, same value,
// or the card itself is wild
func (c *Card) Matches(top *Card) bool {
	if c.Color == ColorWild {
		return true
	}
	return c.Color == top.Color || c.Value == top.Value
}
