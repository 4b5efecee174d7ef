package game

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
)

// Effect is what a legal play does to the table. Wrong marks an illegal play.
type Effect int

const (
	Nothing Effect = iota
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
	Wrong
)

func (e Effect) String() string {
	switch e {
	case Nothing:
		return "No effect"
	case Skip:
		return "Skip"
	case Reverse:
		return "Reverse turn"
	case DrawTwo:
		return "Draw 2 cards"
	case Wild:
		return "WILD!"
	case WildDrawFour:
		return "WILD, and draw 4 cards"
	case Wrong:
		return "Wrong"
	}
	return fmt.Sprintf("effect(%d)", int(e))
}

// EffectOf maps a card kind to the effect it has when played.
func EffectOf(kind card.Kind) Effect {
	switch kind {
	case card.Number:
		return Nothing
	case card.Skip:
		return Skip
	case card.Reverse:
		return Reverse
	case card.DrawTwo:
		return DrawTwo
	case card.Wild:
		return Wild
	case card.WildDrawFour:
		return WildDrawFour
	}
	panic(fmt.Sprintf("uno: no effect for card kind %d", int(kind)))
}

// Evaluate decides whether candidate may be played on top, which is nil when
// the table is empty. The candidate is returned unchanged.
//
// Rules, first match wins:
//   - anything goes on an empty table, with the candidate's own effect;
//   - two numbers of the same value match regardless of color;
//   - two cards of the same assigned color match, with the effect of top;
//   - two action or wild cards of the same kind match;
//   - everything else is Wrong.
func Evaluate(top *card.Card, candidate card.Card) (Effect, card.Card) {
	if top == nil {
		return EffectOf(candidate.Kind()), candidate
	}
	if top.Kind() == card.Number && candidate.Kind() == card.Number && top.Number() == candidate.Number() {
		return Nothing, candidate
	}
	if top.HasColor() && candidate.HasColor() && top.Color() == candidate.Color() {
		return EffectOf(top.Kind()), candidate
	}
	if top.Kind() != card.Number && top.Kind() == candidate.Kind() {
		return EffectOf(candidate.Kind()), candidate
	}
	return Wrong, candidate
}

// Playable reports whether candidate is a legal play on top.
func Playable(candidate card.Card, top *card.Card) bool {
	effect, _ := Evaluate(top, candidate)
	return effect != Wrong
}
