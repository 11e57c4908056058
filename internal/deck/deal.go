package deck

import (
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"
)

// Deal partitions a shuffled draw pile into starting hands and establishes
// the first discard card, mutating the cards in place.
//
// Cards must be the full draw pile in position order. Each seated player
// receives 7 consecutive cards in seating order. The remainder is then
// scanned once, left to right, for the first card that is neither wild nor
// an action card; that card becomes the discard pile's sole card at
// position 1. Every other remaining card, including action cards skipped
// over during the scan, stays in the draw pile in its original relative
// order and is renumbered contiguously from 1.
func Deal(cards []*model.Card, seats []model.Seat) error {
	if len(seats) < model.MinPlayers {
		return model.ErrInsufficientPlayers
	}
	if len(cards) < model.HandSize*len(seats)+1 {
		return model.ErrInsufficientDrawPile
	}

	cursor := 0
	for _, seat := range seats {
		for i := 0; i < model.HandSize; i++ {
			card := cards[cursor]
			cursor++
			card.Location = model.LocationPlayer
			card.OwnerID = seat.PlayerID
			card.Position = 0
		}
	}

	remainder := cards[cursor:]
	discardIdx := -1
	for i, card := range remainder {
		if card.Color == model.ColorWild || card.Value.IsAction() {
			continue
		}
		discardIdx = i
		break
	}
	if discardIdx < 0 {
		return model.ErrNoValidDiscardCard
	}

	discard := remainder[discardIdx]
	discard.Location = model.LocationDiscardPile
	discard.OwnerID = ""
	discard.Position = 1

	position := 1
	for i, card := range remainder {
		if i == discardIdx {
			continue
		}
		card.Position = position
		position++
	}

	return nil
}
