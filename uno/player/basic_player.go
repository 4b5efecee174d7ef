package player

import (
	"github.com/ratel-online/uno/uno/event"
)

type basicPlayer struct {
	name string
}

func (p basicPlayer) Name() string {
	return p.name
}

// Notify is a no-op, bots read everything they need from the state.
func (p basicPlayer) Notify(event.Event) {
}
