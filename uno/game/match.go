package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

type Result struct {
	ID uuid.UUID
	// Finishers lists seats in the order they emptied their hand.
	Finishers []int
	// Loser is the last seat holding cards, or -1 if the match did not end.
	Loser int
	Turns int
}

type MatchOption func(*Match)

// WithTurnLimit stops the match with ErrorsTurnLimit after n turns. Zero means
// no limit.
func WithTurnLimit(n int) MatchOption {
	return func(m *Match) {
		m.turnLimit = n
	}
}

// WithListener adds a listener that sees every event, private ones included.
func WithListener(listener event.Listener) MatchOption {
	return func(m *Match) {
		m.bus.AddListener(listener)
	}
}

func WithID(id uuid.UUID) MatchOption {
	return func(m *Match) {
		m.id = id
	}
}

// Match runs a game to the end, asking the seated players for every decision.
type Match struct {
	id        uuid.UUID
	game      *Game
	players   map[int]Player
	names     map[int]string
	bus       *event.Bus
	turnLimit int
	turns     int
	finishers []int
}

func NewMatch(g *Game, players map[int]Player, opts ...MatchOption) (*Match, error) {
	m := &Match{
		id:      uuid.New(),
		game:    g,
		players: players,
		names:   make(map[int]string, len(players)),
		bus:     event.NewBus(),
	}
	for _, id := range g.SeatOrder() {
		player, ok := players[id]
		if !ok || player == nil {
			return nil, fmt.Errorf("no player for seat %d: %w", id, consts.ErrorsGamePlayersInvalid)
		}
		m.names[id] = player.Name()
		m.bus.AddListener(seatListener(id, player))
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func seatListener(seat int, player Player) event.Listener {
	return event.ListenerFunc(func(e event.Event) {
		if !e.For(seat) {
			return
		}
		e.Own = e.PlayerID == seat
		if !e.Own {
			e.Cards = nil
		}
		player.Notify(e)
	})
}

func (m *Match) ID() uuid.UUID {
	return m.id
}

func (m *Match) Game() *Game {
	return m.game
}

func (m *Match) Run() (Result, error) {
	log.Infof("match %s started with %d players\n", m.id, len(m.players))
	if err := m.Open(); err != nil {
		return m.abort(fmt.Errorf("match %s: %w", m.id, err))
	}
	for !m.game.Ended() {
		if m.turnLimit > 0 && m.turns >= m.turnLimit {
			return m.abort(fmt.Errorf("match %s after %d turns: %w", m.id, m.turns, consts.ErrorsTurnLimit))
		}
		if err := m.PlayTurn(); err != nil {
			return m.abort(fmt.Errorf("match %s: %w", m.id, err))
		}
	}
	result := m.result()
	m.emit(event.Event{
		Type:       event.GameEnded,
		PlayerID:   result.Loser,
		PlayerName: m.names[result.Loser],
		Count:      result.Turns,
	})
	log.Infof("match %s ended after %d turns, finishers %v\n", m.id, result.Turns, result.Finishers)
	return result, nil
}

// abort tells everyone the match stopped without a result.
func (m *Match) abort(err error) (Result, error) {
	m.emit(event.Event{Type: event.MatchAborted, PlayerID: -1, Count: m.turns, Reason: err.Error()})
	log.Errorf("match %s aborted: %v\n", m.id, err)
	return m.result(), err
}

// Open puts the first card of the deck on the table. Its effect hits the
// first player and the turn does not move on afterwards.
func (m *Match) Open() error {
	first, err := m.game.DrawOpening()
	if err != nil {
		return err
	}
	effect, first := Evaluate(m.game.Top(), first)
	m.game.Put(first)
	m.emit(event.Event{
		Type:   event.FirstCardPlayed,
		Card:   first,
		Effect: effect.String(),
		Next:   m.game.CurrentPlayerID(),
	})
	return m.resolve(m.game.CurrentPlayerID(), effect, true)
}

// PlayTurn lets the current player play or draw. Out of range selections and
// illegal cards are rejected and the player is asked again.
func (m *Match) PlayTurn() error {
	id := m.game.CurrentPlayerID()
	player := m.players[id]
	m.turns++
	m.emit(event.Event{Type: event.TurnStarted, PlayerID: id, PlayerName: m.names[id], Count: m.turns})
	for {
		selection, err := player.ChooseCard(m.game.PlayerCards(id), m.state(id))
		if err != nil {
			return fmt.Errorf("seat %d: %w", id, err)
		}
		if selection.Draw {
			return m.drawAndPass(id)
		}
		candidate, err := m.game.TakeCard(id, selection.Index)
		if err != nil {
			log.Infof("seat %d selected %s: %v\n", id, selection, err)
			m.emit(event.Event{
				Type:       event.SelectionRejected,
				PlayerID:   id,
				PlayerName: m.names[id],
				Private:    true,
				Reason:     err.Error(),
			})
			continue
		}
		effect, candidate := Evaluate(m.game.Top(), candidate)
		if effect == Wrong {
			if err := m.game.ReturnCard(id, selection.Index, candidate); err != nil {
				return err
			}
			m.emit(event.Event{
				Type:       event.CardRejected,
				PlayerID:   id,
				PlayerName: m.names[id],
				Private:    true,
				Card:       candidate,
				Reason:     consts.ErrorsInvalidPlay.Error(),
			})
			continue
		}
		m.game.Put(candidate)
		m.emit(event.Event{
			Type:       event.CardPlayed,
			PlayerID:   id,
			PlayerName: m.names[id],
			Card:       candidate,
			Effect:     effect.String(),
		})
		if err := m.resolve(id, effect, false); err != nil {
			return err
		}
		if m.game.DidWin(id) {
			m.game.MarkWin(id)
			m.finishers = append(m.finishers, id)
			m.emit(event.Event{
				Type:       event.PlayerWon,
				PlayerID:   id,
				PlayerName: m.names[id],
				Count:      len(m.finishers),
			})
		}
		m.game.NextTurn()
		return nil
	}
}

// resolve asks the acting player for a color when a wild card needs one and
// applies the effect. The opening card has no player of its own, so a skip
// hits whoever sits at the pointer.
func (m *Match) resolve(actor int, effect Effect, opening bool) error {
	chosen := color.None
	if m.game.ShouldAskForColor() {
		c, err := m.chooseColor(actor)
		if err != nil {
			return err
		}
		chosen = c
	}
	target := m.game.CurrentPlayerID()
	before := len(m.game.PlayerCards(target))
	reshuffles := m.game.Reshuffles()
	if err := m.game.TakeEffect(effect, chosen); err != nil {
		return err
	}
	if m.game.Reshuffles() != reshuffles {
		m.emit(event.Event{Type: event.DeckReshuffled, Count: m.game.Deck().Len()})
	}
	if chosen.Valid() {
		m.emit(event.Event{Type: event.ColorPicked, PlayerID: actor, PlayerName: m.names[actor], Color: chosen})
	}
	switch effect {
	case Skip:
		skipped := m.game.CurrentPlayerID()
		if opening {
			skipped = target
		}
		m.emit(event.Event{Type: event.TurnSkipped, PlayerID: skipped, PlayerName: m.names[skipped]})
	case Reverse:
		m.emit(event.Event{Type: event.TurnOrderReversed, PlayerID: actor, PlayerName: m.names[actor]})
	case DrawTwo, WildDrawFour:
		cards := m.game.PlayerCards(target)
		m.emitDrawn(target, cards[before:])
	}
	return nil
}

func (m *Match) chooseColor(id int) (color.Color, error) {
	for {
		c, err := m.players[id].ChooseColor(m.state(id))
		if err != nil {
			return color.None, fmt.Errorf("seat %d: %w", id, err)
		}
		if c.Valid() {
			return c, nil
		}
		m.emit(event.Event{
			Type:       event.SelectionRejected,
			PlayerID:   id,
			PlayerName: m.names[id],
			Private:    true,
			Reason:     consts.ErrorsUnknownColor.Error(),
		})
	}
}

func (m *Match) drawAndPass(id int) error {
	reshuffles := m.game.Reshuffles()
	cards, err := m.game.Draw(id, 1)
	if err != nil {
		return err
	}
	if m.game.Reshuffles() != reshuffles {
		m.emit(event.Event{Type: event.DeckReshuffled, Count: m.game.Deck().Len()})
	}
	m.emitDrawn(id, cards)
	m.emit(event.Event{Type: event.PlayerPassed, PlayerID: id, PlayerName: m.names[id]})
	m.game.NextTurn()
	return nil
}

func (m *Match) emitDrawn(id int, cards []card.Card) {
	drawn := make([]card.Card, len(cards))
	copy(drawn, cards)
	m.emit(event.Event{
		Type:       event.CardsDrawn,
		PlayerID:   id,
		PlayerName: m.names[id],
		Cards:      drawn,
		Count:      len(drawn),
	})
}

func (m *Match) emit(e event.Event) {
	e.MatchID = m.id
	m.bus.Emit(e)
}

func (m *Match) state(id int) State {
	state := m.game.ExtractState(id)
	state.PlayerNames = m.names
	return state
}

func (m *Match) result() Result {
	finishers := make([]int, len(m.finishers))
	copy(finishers, m.finishers)
	result := Result{ID: m.id, Finishers: finishers, Loser: -1, Turns: m.turns}
	if m.game.Ended() {
		for _, id := range m.game.SeatOrder() {
			if !m.game.DidWin(id) {
				result.Loser = id
			}
		}
	}
	return result
}
