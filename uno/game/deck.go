package game

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Deck is drawn from the front.
type Deck struct {
	cards []card.Card
}

// BuildDeck returns the 108 standard cards, unshuffled, always in the same
// order: per color a zero followed by two runs of 1-9, skip, reverse and draw
// two; then four pairs of wild and wild draw four.
func BuildDeck() *Deck {
	cards := make([]card.Card, 0, consts.DeckSize)
	for _, cardColor := range color.All {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createBlackCards()...)
	return &Deck{cards: cards}
}

// NewDeck wraps cards as a deck, front first.
func NewDeck(cards []card.Card) *Deck {
	deck := &Deck{cards: make([]card.Card, len(cards))}
	copy(deck.cards, cards)
	return deck
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := []card.Card{card.NewNumberCard(cardColor, 0)}
	for run := 0; run < 2; run++ {
		for number := 1; number <= 9; number++ {
			cards = append(cards, card.NewNumberCard(cardColor, number))
		}
		cards = append(cards,
			card.NewSkipCard(cardColor),
			card.NewReverseCard(cardColor),
			card.NewDrawTwoCard(cardColor),
		)
	}
	return cards
}

func createBlackCards() []card.Card {
	cards := make([]card.Card, 0, 8)
	for i := 0; i < 4; i++ {
		cards = append(cards, card.NewWildCard(), card.NewWildDrawFourCard())
	}
	return cards
}

func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Draw removes amount cards from the front. When fewer are left nothing is
// drawn.
func (d *Deck) Draw(amount int) ([]card.Card, error) {
	if amount < 0 {
		return nil, fmt.Errorf("draw %d cards: %w", amount, consts.ErrorsInputInvalid)
	}
	if len(d.cards) < amount {
		return nil, fmt.Errorf("draw %d of %d cards: %w", amount, len(d.cards), consts.ErrorsDeckExhausted)
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards, nil
}

func (d *Deck) DrawOne() (card.Card, error) {
	cards, err := d.Draw(1)
	if err != nil {
		return card.Card{}, err
	}
	return cards[0], nil
}

// Refill shuffles cards and puts them under the remaining ones.
func (d *Deck) Refill(cards []card.Card, rng *rand.Rand) {
	recycled := NewDeck(cards)
	recycled.Shuffle(rng)
	d.cards = append(d.cards, recycled.cards...)
}
