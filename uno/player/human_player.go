package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/ui"
)

type humanPlayer struct {
	basicPlayer
	terminal *ui.Terminal
}

func NewHumanPlayer(name string, terminal *ui.Terminal) game.Player {
	return humanPlayer{basicPlayer: basicPlayer{name: name}, terminal: terminal}
}

func (p humanPlayer) ChooseColor(gameState game.State) (color.Color, error) {
	return p.terminal.PromptColor()
}

func (p humanPlayer) ChooseCard(hand []card.Card, gameState game.State) (game.Selection, error) {
	p.terminal.Print(msg.Message.HumanPlayerTurnStarted(p.name))
	p.terminal.Println(gameState)
	return p.terminal.PromptCardSelection(hand)
}

func (p humanPlayer) Notify(e event.Event) {
	if e.Type == event.TurnStarted && e.Own {
		return
	}
	p.terminal.Print(msg.Message.Describe(e))
}

// Spectator prints every event of a table, for games without a human seat.
type Spectator struct {
	terminal *ui.Terminal
}

func NewSpectator(terminal *ui.Terminal) Spectator {
	return Spectator{terminal: terminal}
}

func (s Spectator) OnEvent(e event.Event) {
	s.terminal.Print(msg.Message.Describe(e))
}
