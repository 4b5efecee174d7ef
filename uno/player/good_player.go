package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type goodPlayer struct {
	basicPlayer
}

// NewGoodPlayer keeps its options open: it plays the card that leaves the
// most follow-up plays in hand and picks its most frequent color.
func NewGoodPlayer(name string) game.Player {
	return goodPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p goodPlayer) ChooseColor(gameState game.State) (color.Color, error) {
	colorCounts := make(map[color.Color]int)
	for _, c := range gameState.CurrentPlayerHand {
		if c.HasColor() {
			colorCounts[c.Color()]++
		}
	}

	mostFrequentColor := color.All[0]
	mostFrequentColorAmount := 0
	for _, availableColor := range color.All {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}

	return mostFrequentColor, nil
}

func (p goodPlayer) ChooseCard(hand []card.Card, gameState game.State) (game.Selection, error) {
	mostDiscardableCardIndex := -1
	maxSpareCards := -1

	for cardIndex, playableCard := range hand {
		if !game.Playable(playableCard, gameState.LastPlayedCard) {
			continue
		}
		spareCards := 0
		for handIndex, handCard := range hand {
			if handIndex != cardIndex && game.Playable(handCard, &playableCard) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	if mostDiscardableCardIndex < 0 {
		return game.DrawSelection(), nil
	}
	return game.IndexSelection(mostDiscardableCardIndex), nil
}
