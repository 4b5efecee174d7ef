package game

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
)

// Hand keeps cards in the order players address them by index.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.HandSize)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// PlayableIndices returns the positions of the cards that may go on top.
func (h *Hand) PlayableIndices(top *card.Card) []int {
	indices := make([]int, 0)
	for i, c := range h.cards {
		if Playable(c, top) {
			indices = append(indices, i)
		}
	}
	return indices
}

// RemoveAt takes the card at index out of the hand.
func (h *Hand) RemoveAt(index int) (card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, fmt.Errorf("index %d of %d cards: %w", index, len(h.cards), consts.ErrorsOutOfRangeSelection)
	}
	removed := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, nil
}

// InsertAt puts a card back at index. Indices past the end append.
func (h *Hand) InsertAt(index int, c card.Card) {
	if index < 0 {
		index = 0
	}
	if index >= len(h.cards) {
		h.cards = append(h.cards, c)
		return
	}
	h.cards = append(h.cards[:index+1], h.cards[index:]...)
	h.cards[index] = c
}

func (h *Hand) Size() int {
	return len(h.cards)
}
