// Package deck builds and deals the standard 108-card deck.
package deck

import (
	"github.com/google/uuid"

	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/dependencies/random"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"
)

// Build produces a freshly shuffled standard deck for the given game:
// per color one 0, two each of 1-9, two each of skip/reverse/draw-two,
// plus four wilds and four wild-draw-fours (108 cards total). Cards come
// back in draw-pile order with positions 1..108.
func Build(gameID model.GameID, r random.Random) []*model.Card {
	cards := make([]*model.Card, 0, model.DeckSize)

	add := func(color model.CardColor, value model.CardValue) {
		cards = append(cards, &model.Card{
			ID:       model.CardID(uuid.NewString()),
			GameID:   gameID,
			Color:    color,
			Value:    value,
			Location: model.LocationDrawPile,
		})
	}

	for _, color := range model.Colors {
		add(color, model.ValueZero)
		for _, value := range model.NumberValues[1:] {
			add(color, value)
			add(color, value)
		}
		for i := 0; i < 2; i++ {
			add(color, model.ValueSkip)
			add(color, model.ValueReverse)
			add(color, model.ValueDrawTwo)
		}
	}

	for i := 0; i < 4; i++ {
		add(model.ColorWild, model.ValueWild)
		add(model.ColorWild, model.ValueWildDrawFour)
	}

	shuffle(cards, r)

	for i, c := range cards {
		c.Position = i + 1
	}

	return cards
}

// shuffle performs an unbiased Fisher-Yates shuffle using the injected
// random source
func shuffle(cards []*model.Card, r random.Random) {
	for i := len(cards) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
