package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

var Message = MessageWriter{}

func Sprintfln(format string, args ...interface{}) string {
	return fmt.Sprintln(fmt.Sprintf(format, args...))
}

func Sprintln(args ...interface{}) string {
	return fmt.Sprintln(args...)
}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card, effect string) string {
	return Sprintfln("First card is %s (%s)", card, effect)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return Sprintfln("You drew %s!", cards)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) string {
	if amount == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, amount)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card, effect string) string {
	return Sprintfln("%s played %s! %s", playerName, card, effect)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return Sprintfln("It's %s's turn!", playerName)
}

func (m MessageWriter) InvalidPlay(card card.Card) string {
	return Sprintfln("INVALID PLAY: %s does not match, try again!", card)
}

func (m MessageWriter) SelectionRejected(reason string) string {
	return Sprintfln("%s Try again!", reason)
}

// CardMenu lists a hand by index, followed by the draw option.
func (m MessageWriter) CardMenu(hand []card.Card) string {
	lines := []string{"Select a card to play:"}
	for index, c := range hand {
		lines = append(lines, fmt.Sprintf("%s (enter %d)", c, index))
	}
	lines = append(lines, "draw a card (enter draw)")
	return strings.Join(lines, "\n")
}

func (m MessageWriter) ColorMenu() string {
	return fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
}

func (m MessageWriter) NoCardAssigned(input string) string {
	return Sprintfln("No card assigned to '%s'", input)
}

func (m MessageWriter) UnknownColor(input string) string {
	return Sprintfln("Unknown color '%s'", input)
}

func (m MessageWriter) DeckReshuffled(deckSize int) string {
	return Sprintfln("The discard pile was shuffled back into the deck, %d cards left.", deckSize)
}

func (m MessageWriter) TurnOrderReversed() string {
	return Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string, place int) string {
	if place <= 1 {
		return Sprintfln("%s wins!", playerName)
	}
	return Sprintfln("%s finished in place %d!", playerName, place)
}

func (m MessageWriter) GameEnded(loserName string) string {
	return Sprintfln("Game over! %s is left holding cards.", loserName)
}

func (m MessageWriter) MatchAborted(reason string) string {
	return Sprintfln("The match was aborted: %s", reason)
}

// Describe renders an event for a player. Drawn cards are only listed when
// the event still carries them.
func (m MessageWriter) Describe(e event.Event) string {
	switch e.Type {
	case event.FirstCardPlayed:
		return m.FirstCardPlayed(e.Card, e.Effect)
	case event.TurnStarted:
		return m.PlayerTurnStarted(e.PlayerName)
	case event.CardPlayed:
		return m.PlayerPlayedCard(e.PlayerName, e.Card, e.Effect)
	case event.CardRejected:
		return m.InvalidPlay(e.Card)
	case event.SelectionRejected:
		return m.SelectionRejected(e.Reason)
	case event.ColorPicked:
		return m.PlayerPickedColor(e.PlayerName, e.Color)
	case event.CardsDrawn:
		if len(e.Cards) > 0 {
			return m.HumanPlayerDrewCards(e.Cards)
		}
		return m.PlayerDrewCards(e.PlayerName, e.Count)
	case event.PlayerPassed:
		return m.PlayerPassed(e.PlayerName)
	case event.TurnSkipped:
		return m.PlayerTurnSkipped(e.PlayerName)
	case event.TurnOrderReversed:
		return m.TurnOrderReversed()
	case event.DeckReshuffled:
		return m.DeckReshuffled(e.Count)
	case event.PlayerWon:
		return m.WinnerFound(e.PlayerName, e.Count)
	case event.GameEnded:
		return m.GameEnded(e.PlayerName)
	case event.MatchAborted:
		return m.MatchAborted(e.Reason)
	}
	return ""
}
