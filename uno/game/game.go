package game

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type Status int

const (
	InProgress Status = iota
	Ended
)

func (s Status) String() string {
	if s == Ended {
		return "ended"
	}
	return "in progress"
}

// Game owns the deck, the pile and every hand. It is not safe for concurrent
// use; a table drives it from a single goroutine.
type Game struct {
	deck       *Deck
	pile       *Pile
	turns      *Cycler
	hands      map[int]*Hand
	won        map[int]bool
	wins       int
	reshuffles int
	rng        *rand.Rand
}

// New shuffles a standard deck with rng and deals it to players seats.
func New(players int, rng *rand.Rand) (*Game, error) {
	deck := BuildDeck()
	deck.Shuffle(rng)
	seats, err := Deal(deck, players)
	if err != nil {
		return nil, err
	}
	return NewFromSeats(deck, seats, rng)
}

// NewFromSeats builds a game from an already dealt table. Turn order follows
// the order of seats.
func NewFromSeats(deck *Deck, seats []Seat, rng *rand.Rand) (*Game, error) {
	if len(seats) < consts.MinPlayers || len(seats) > consts.MaxPlayers {
		return nil, fmt.Errorf("%d seats: %w", len(seats), consts.ErrorsGamePlayersInvalid)
	}
	ids := make([]int, 0, len(seats))
	hands := make(map[int]*Hand, len(seats))
	for _, seat := range seats {
		if _, ok := hands[seat.ID]; ok || seat.Hand == nil {
			return nil, fmt.Errorf("seat %d: %w", seat.ID, consts.ErrorsGamePlayersInvalid)
		}
		ids = append(ids, seat.ID)
		hands[seat.ID] = seat.Hand
	}
	return &Game{
		deck:  deck,
		pile:  NewPile(),
		turns: NewCycler(ids),
		hands: hands,
		won:   make(map[int]bool),
		rng:   rng,
	}, nil
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) Pile() *Pile {
	return g.pile
}

func (g *Game) CurrentPlayerID() int {
	return g.turns.Current()
}

// SeatOrder returns the seat ids in current turn order.
func (g *Game) SeatOrder() []int {
	order := make([]int, 0, g.turns.Len())
	g.turns.ForEach(func(id int) {
		order = append(order, id)
	})
	return order
}

func (g *Game) PlayerCards(id int) []card.Card {
	hand, ok := g.hands[id]
	if !ok {
		return nil
	}
	return hand.Cards()
}

func (g *Game) hand(id int) (*Hand, error) {
	hand, ok := g.hands[id]
	if !ok {
		return nil, fmt.Errorf("seat %d: %w", id, consts.ErrorsInputInvalid)
	}
	return hand, nil
}

// TakeCard removes the card at index from a player's hand.
func (g *Game) TakeCard(id, index int) (card.Card, error) {
	hand, err := g.hand(id)
	if err != nil {
		return card.Card{}, err
	}
	return hand.RemoveAt(index)
}

// ReturnCard puts a rejected card back where it was taken from.
func (g *Game) ReturnCard(id, index int, c card.Card) error {
	hand, err := g.hand(id)
	if err != nil {
		return err
	}
	hand.InsertAt(index, c)
	return nil
}

func (g *Game) Top() *card.Card {
	return g.pile.Top()
}

func (g *Game) Put(c card.Card) {
	g.pile.Add(c)
}

// DrawOpening takes the card that starts the discard pile.
func (g *Game) DrawOpening() (card.Card, error) {
	cards, err := g.draw(1)
	if err != nil {
		return card.Card{}, err
	}
	return cards[0], nil
}

// Draw moves amount cards from the deck into a player's hand. A short deck is
// topped up with the discard pile first; if that is not enough nothing is
// drawn.
func (g *Game) Draw(id, amount int) ([]card.Card, error) {
	hand, err := g.hand(id)
	if err != nil {
		return nil, err
	}
	cards, err := g.draw(amount)
	if err != nil {
		return nil, fmt.Errorf("seat %d: %w", id, err)
	}
	hand.AddCards(cards)
	return cards, nil
}

func (g *Game) draw(amount int) ([]card.Card, error) {
	if g.deck.Len() < amount {
		if recycled := g.pile.Recycle(); len(recycled) > 0 {
			g.deck.Refill(recycled, g.rng)
			g.reshuffles++
		}
	}
	return g.deck.Draw(amount)
}

// Reshuffles counts how often the discard pile went back into the deck.
func (g *Game) Reshuffles() int {
	return g.reshuffles
}

// TakeEffect applies what the card just put on the pile does. Draw effects hit
// the current player. chosen is only used to paint an unpainted wild card on
// top of the pile.
func (g *Game) TakeEffect(effect Effect, chosen color.Color) error {
	switch effect {
	case Nothing:
		return nil
	case Skip:
		g.NextTurn()
		return nil
	case Reverse:
		g.turns.Reverse()
		return nil
	case DrawTwo:
		_, err := g.Draw(g.CurrentPlayerID(), 2)
		return err
	case Wild:
		return g.pile.PaintTop(chosen)
	case WildDrawFour:
		if g.pile.NeedsColor() && !chosen.Valid() {
			return consts.ErrorsColorRequired
		}
		if _, err := g.Draw(g.CurrentPlayerID(), 4); err != nil {
			return err
		}
		return g.pile.PaintTop(chosen)
	case Wrong:
		return consts.ErrorsInvalidPlay
	}
	return fmt.Errorf("effect %d: %w", int(effect), consts.ErrorsInputInvalid)
}

// NextTurn passes the turn on, skipping players whose hand is empty.
func (g *Game) NextTurn() int {
	return g.turns.Next(func(id int) bool {
		return g.hands[id].Empty()
	})
}

func (g *Game) ShouldAskForColor() bool {
	return g.pile.NeedsColor()
}

func (g *Game) DidWin(id int) bool {
	hand, ok := g.hands[id]
	return ok && hand.Empty()
}

// MarkWin records a finished player. Marking the same seat twice counts once.
func (g *Game) MarkWin(id int) {
	if g.won[id] {
		return
	}
	g.won[id] = true
	g.wins++
}

func (g *Game) Wins() int {
	return g.wins
}

func (g *Game) Status() Status {
	if g.wins+1 >= g.turns.Len() {
		return Ended
	}
	return InProgress
}

func (g *Game) Ended() bool {
	return g.Status() == Ended
}

// ExtractState is what a player gets to see before deciding.
func (g *Game) ExtractState(id int) State {
	playerSequence := g.SeatOrder()
	playerHandCounts := make(map[int]int, len(playerSequence))
	remaining := 0
	for _, seat := range playerSequence {
		size := g.hands[seat].Size()
		playerHandCounts[seat] = size
		if size > 0 {
			remaining++
		}
	}
	return State{
		PlayerID:          id,
		LastPlayedCard:    g.pile.Top(),
		PileSize:          g.pile.Size(),
		DeckSize:          g.deck.Len(),
		CurrentPlayerHand: g.PlayerCards(id),
		PlayerSequence:    playerSequence,
		PlayerHandCounts:  playerHandCounts,
		Remaining:         remaining,
	}
}
