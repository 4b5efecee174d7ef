package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

type State struct {
	PlayerID          int
	LastPlayedCard    *card.Card
	PileSize          int
	DeckSize          int
	CurrentPlayerHand []card.Card
	PlayerSequence    []int
	PlayerNames       map[int]string
	PlayerHandCounts  map[int]int
	Remaining         int
}

func (s State) PlayerName(id int) string {
	if name, ok := s.PlayerNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Player %d", id)
}

func (s State) String() string {
	var lines []string
	if s.LastPlayedCard == nil {
		lines = append(lines, "Last played card: none, the table is empty")
	} else {
		lines = append(lines, fmt.Sprintf("Last played card: %s", *s.LastPlayedCard))
	}

	var playerStatuses []string
	for _, id := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", s.PlayerName(id), s.PlayerHandCounts[id])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Players left: %d, cards in deck: %d", s.Remaining, s.DeckSize))

	var handCards []string
	for i, c := range s.CurrentPlayerHand {
		handCards = append(handCards, fmt.Sprintf("%d:%s", i, c))
	}
	lines = append(lines, fmt.Sprintf("Your hand: %s", strings.Join(handCards, " ")))

	return strings.Join(lines, "\n")
}
