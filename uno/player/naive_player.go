package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type naivePlayer struct {
	basicPlayer
	rng *rand.Rand
}

// NewNaivePlayer plays the first legal card it finds and picks colors at
// random.
func NewNaivePlayer(name string, rng *rand.Rand) game.Player {
	return naivePlayer{basicPlayer: basicPlayer{name: name}, rng: rng}
}

func (p naivePlayer) ChooseColor(gameState game.State) (color.Color, error) {
	return color.All[p.rng.Intn(len(color.All))], nil
}

func (p naivePlayer) ChooseCard(hand []card.Card, gameState game.State) (game.Selection, error) {
	for index, c := range hand {
		if game.Playable(c, gameState.LastPlayedCard) {
			return game.IndexSelection(index), nil
		}
	}
	return game.DrawSelection(), nil
}
