package database

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
)

// Session is the part of a connected client a seat needs.
type Session interface {
	WriteString(data string) error
	AskForString(timeout ...time.Duration) (string, error)
}

// RemotePlayer plays a seat for a client on the other end of a connection.
// Notifications are written in order by a single writer so a slow client
// does not hold up the table. Once the client leaves or goes quiet the seat
// draws and picks red on its own.
type RemotePlayer struct {
	name    string
	session Session
	timeout time.Duration

	gone    atomic.Bool
	lock    sync.Mutex
	closed  bool
	pending sync.WaitGroup
	outbox  chan string
}

func NewRemotePlayer(name string, session Session, timeout time.Duration) *RemotePlayer {
	p := &RemotePlayer{
		name:    name,
		session: session,
		timeout: timeout,
		outbox:  make(chan string, 64),
	}
	async.Async(p.deliver)
	return p
}

func (p *RemotePlayer) Name() string {
	return p.name
}

// Gone reports whether the client left the table.
func (p *RemotePlayer) Gone() bool {
	return p.gone.Load()
}

func (p *RemotePlayer) ChooseCard(hand []card.Card, state game.State) (game.Selection, error) {
	p.flush()
	if p.gone.Load() {
		return game.DrawSelection(), nil
	}
	prompt := msg.Message.HumanPlayerTurnStarted(p.name) + msg.Sprintln(state) + msg.Sprintln(msg.Message.CardMenu(hand))
	for {
		_ = p.session.WriteString(prompt)
		answer, err := p.session.AskForString(p.timeout)
		if err != nil {
			if p.giveUp(err) {
				_ = p.session.WriteString(msg.Sprintln("Time is up, you draw a card."))
				return game.DrawSelection(), nil
			}
			return game.Selection{}, err
		}
		selection, err := game.ParseSelection(answer)
		if err != nil {
			_ = p.session.WriteString(msg.Message.NoCardAssigned(answer))
			continue
		}
		return selection, nil
	}
}

func (p *RemotePlayer) ChooseColor(state game.State) (color.Color, error) {
	p.flush()
	if p.gone.Load() {
		return color.Red, nil
	}
	for {
		_ = p.session.WriteString(msg.Sprintln(msg.Message.ColorMenu()))
		answer, err := p.session.AskForString(p.timeout)
		if err != nil {
			if p.giveUp(err) {
				_ = p.session.WriteString(msg.Sprintfln("Time is up, %s it is.", color.Red))
				return color.Red, nil
			}
			return color.None, err
		}
		chosen, err := color.ByName(answer)
		if err != nil {
			_ = p.session.WriteString(msg.Message.UnknownColor(answer))
			continue
		}
		return chosen, nil
	}
}

// giveUp reports whether the seat should fall back to its default move.
// Leaving the table or closing the connection makes that permanent.
func (p *RemotePlayer) giveUp(err error) bool {
	switch {
	case errors.Is(err, consts.ErrorsTimeout):
		return true
	case errors.Is(err, consts.ErrorsExist), errors.Is(err, consts.ErrorsChanClosed):
		if !p.gone.Swap(true) {
			log.Infof("%s left the table, playing on autopilot\n", p.name)
		}
		return true
	}
	return false
}

func (p *RemotePlayer) Notify(e event.Event) {
	if e.Type == event.TurnStarted && e.Own {
		return
	}
	p.send(msg.Message.Describe(e))
}

func (p *RemotePlayer) send(text string) {
	if text == "" {
		return
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.closed {
		return
	}
	p.pending.Add(1)
	p.outbox <- text
}

func (p *RemotePlayer) deliver() {
	for text := range p.outbox {
		if !p.gone.Load() {
			_ = p.session.WriteString(text)
		}
		p.pending.Done()
	}
}

// flush waits until every queued notification has been written.
func (p *RemotePlayer) flush() {
	p.pending.Wait()
}

// Close writes out what is still queued and stops the writer.
func (p *RemotePlayer) Close() {
	p.lock.Lock()
	if p.closed {
		p.lock.Unlock()
		return
	}
	p.closed = true
	close(p.outbox)
	p.lock.Unlock()
	p.flush()
}
