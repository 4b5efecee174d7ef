package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Pile is the discard pile. Only its top matters for play.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(c card.Card) {
	p.cards = append(p.cards, c)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Size() int {
	return len(p.cards)
}

// Top returns a copy of the last card played, or nil on an empty table.
func (p *Pile) Top() *card.Card {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return nil
	}
	top := p.cards[pileSize-1]
	return &top
}

// NeedsColor reports whether the top is a wild card still waiting for a color.
func (p *Pile) NeedsColor() bool {
	top := p.Top()
	return top != nil && top.IsWild() && !top.HasColor()
}

// PaintTop assigns a color to an unpainted wild card on top. Any other top is
// left alone.
func (p *Pile) PaintTop(chosen color.Color) error {
	if !p.NeedsColor() {
		return nil
	}
	if !chosen.Valid() {
		return consts.ErrorsColorRequired
	}
	p.cards[len(p.cards)-1] = p.cards[len(p.cards)-1].WithColor(chosen)
	return nil
}

// Recycle removes every card but the top and returns them with wild cards
// unpainted.
func (p *Pile) Recycle() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	recycled := make([]card.Card, 0, len(p.cards)-1)
	for _, c := range p.cards[:len(p.cards)-1] {
		recycled = append(recycled, c.Uncolored())
	}
	p.cards = []card.Card{p.cards[len(p.cards)-1]}
	return recycled
}
