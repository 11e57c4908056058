package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/dependencies/random"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"
)

type cardFace struct {
	color model.CardColor
	value model.CardValue
}

func countFaces(cards []*model.Card) map[cardFace]int {
	counts := make(map[cardFace]int)
	for _, c := range cards {
		counts[cardFace{c.Color, c.Value}]++
	}
	return counts
}

func TestBuildProducesStandardDeck(t *testing.T) {
	cards := Build("game-1", random.New())

	require.Len(t, cards, model.DeckSize)

	counts := countFaces(cards)
	for _, color := range model.Colors {
		assert.Equal(t, 1, counts[cardFace{color, model.ValueZero}], "one 0 per color")
		for _, value := range model.NumberValues[1:] {
			assert.Equal(t, 2, counts[cardFace{color, value}], "two %s per color", value)
		}
		assert.Equal(t, 2, counts[cardFace{color, model.ValueSkip}])
		assert.Equal(t, 2, counts[cardFace{color, model.ValueReverse}])
		assert.Equal(t, 2, counts[cardFace{color, model.ValueDrawTwo}])
	}
	assert.Equal(t, 4, counts[cardFace{model.ColorWild, model.ValueWild}])
	assert.Equal(t, 4, counts[cardFace{model.ColorWild, model.ValueWildDrawFour}])
}

func TestBuildAssignsContiguousPositions(t *testing.T) {
	cards := Build("game-1", random.New())

	for i, c := range cards {
		assert.Equal(t, i+1, c.Position)
		assert.Equal(t, model.LocationDrawPile, c.Location)
		assert.Equal(t, model.GameID("game-1"), c.GameID)
		assert.NotEmpty(t, c.ID)
	}
}

func TestBuildShufflePreservesMultiset(t *testing.T) {
	first := Build("game-1", random.New())
	second := Build("game-2", random.New())

	assert.Equal(t, countFaces(first), countFaces(second))
}

func TestBuildCardIDsAreUnique(t *testing.T) {
	cards := Build("game-1", random.New())

	seen := make(map[model.CardID]bool, len(cards))
	for _, c := range cards {
		assert.False(t, seen[c.ID], "duplicate card id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestBuildShuffleVariesOrder(t *testing.T) {
	// With a real random source two shuffles of 108 cards agreeing on
	// every face in every slot is beyond astronomically unlikely.
	first := Build("game-1", random.New())
	second := Build("game-1", random.New())

	same := true
	for i := range first {
		if first[i].Color != second[i].Color || first[i].Value != second[i].Value {
			same = false
			break
		}
	}
	assert.False(t, same, "two independent shuffles produced identical order")
}
