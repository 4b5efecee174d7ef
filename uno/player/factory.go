package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/ui"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// CreatePlayers seats a human at seat 0 and fills the rest with bots.
func CreatePlayers(numberOfPlayers int, humanPlayerName string, terminal *ui.Terminal, rng *rand.Rand) map[int]game.Player {
	players := CreateBots(numberOfPlayers, rng)
	players[0] = NewHumanPlayer(humanPlayerName, terminal)
	return players
}

// CreateBots seats bots with distinct names. Every other bot is a naive one.
func CreateBots(amount int, rng *rand.Rand) map[int]game.Player {
	names := make([]string, len(botNames))
	copy(names, botNames)
	rng.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })
	bots := make(map[int]game.Player, amount)
	for seat := 0; seat < amount; seat++ {
		name := names[seat%len(names)]
		if seat%2 == 0 {
			bots[seat] = NewGoodPlayer(name)
		} else {
			bots[seat] = NewNaivePlayer(name, rng)
		}
	}
	return bots
}
