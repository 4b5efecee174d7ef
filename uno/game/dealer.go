package game

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
)

// Seat pairs a hand with the player id it was dealt to. Ids follow dealing
// order and never change, whatever the turn order becomes.
type Seat struct {
	ID   int
	Hand *Hand
}

// Deal gives every player a contiguous block of HandSize cards from the front
// of the deck, in id order.
func Deal(deck *Deck, players int) ([]Seat, error) {
	if players < consts.MinPlayers || players > consts.MaxPlayers {
		return nil, fmt.Errorf("deal to %d players: %w", players, consts.ErrorsGamePlayersInvalid)
	}
	if deck.Len() < players*consts.HandSize {
		return nil, fmt.Errorf("deal to %d players: %w", players, consts.ErrorsDeckExhausted)
	}
	seats := make([]Seat, 0, players)
	for id := 0; id < players; id++ {
		cards, err := deck.Draw(consts.HandSize)
		if err != nil {
			return nil, err
		}
		hand := NewHand()
		hand.AddCards(cards)
		seats = append(seats, Seat{ID: id, Hand: hand})
	}
	return seats, nil
}
