package event

import (
	"sync"

	"github.com/google/uuid"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type Type string

const (
	FirstCardPlayed   Type = "first_card_played"
	TurnStarted       Type = "turn_started"
	CardPlayed        Type = "card_played"
	CardRejected      Type = "card_rejected"
	SelectionRejected Type = "selection_rejected"
	ColorPicked       Type = "color_picked"
	CardsDrawn        Type = "cards_drawn"
	PlayerPassed      Type = "player_passed"
	TurnSkipped       Type = "turn_skipped"
	TurnOrderReversed Type = "turn_order_reversed"
	DeckReshuffled    Type = "deck_reshuffled"
	PlayerWon         Type = "player_won"
	GameEnded         Type = "game_ended"
	MatchAborted      Type = "match_aborted"
)

// Event describes something that happened at a table. Private events are
// only delivered to PlayerID.
type Event struct {
	MatchID    uuid.UUID
	Type       Type
	PlayerID   int
	PlayerName string
	Private    bool
	Card       card.Card
	Cards      []card.Card
	Count      int
	Color      color.Color
	Effect     string
	Next       int
	Reason     string
	// Own is set on delivery to a seat when PlayerID is that seat.
	Own        bool
}

// For reports whether the event should be delivered to the given seat.
func (e Event) For(seat int) bool {
	return !e.Private || e.PlayerID == seat
}

type Listener interface {
	OnEvent(Event)
}

type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// Bus delivers events to its listeners in registration order. Emit does not
// return until every listener has been called, so listeners doing I/O must
// hand the work off themselves.
type Bus struct {
	sync.RWMutex
	listeners []Listener
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) AddListener(listener Listener) {
	b.Lock()
	defer b.Unlock()
	b.listeners = append(b.listeners, listener)
}

func (b *Bus) Emit(e Event) {
	b.RLock()
	listeners := b.listeners
	b.RUnlock()
	for _, listener := range listeners {
		listener.OnEvent(e)
	}
}
