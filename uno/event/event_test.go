package event_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/stretchr/testify/require"
)

func TestEmit(t *testing.T) {
	bus := event.NewBus()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	bus.AddListener(listenerOne)
	bus.AddListener(listenerTwo)

	events := []event.Event{
		{
			Type:       event.CardPlayed,
			PlayerName: "Someone",
			Card:       card.NewWildCard(),
		},
		{
			Type:       event.ColorPicked,
			PlayerName: "Somebody",
			Color:      color.Green,
		},
		{
			Type:       event.PlayerPassed,
			PlayerName: "Someone",
		},
	}

	for _, e := range events {
		bus.Emit(e)
	}

	require.Equal(t, events, listenerOne.ReceivedEvents())
	require.Equal(t, events, listenerTwo.ReceivedEvents())
}

func TestListenerFunc(t *testing.T) {
	bus := event.NewBus()
	var received []event.Type
	bus.AddListener(event.ListenerFunc(func(e event.Event) {
		received = append(received, e.Type)
	}))

	bus.Emit(event.Event{Type: event.FirstCardPlayed})
	bus.Emit(event.Event{Type: event.GameEnded})

	require.Equal(t, []event.Type{event.FirstCardPlayed, event.GameEnded}, received)
}

func TestFor(t *testing.T) {
	broadcast := event.Event{Type: event.CardPlayed, PlayerID: 1}
	require.True(t, broadcast.For(0))
	require.True(t, broadcast.For(1))

	private := event.Event{Type: event.CardRejected, PlayerID: 1, Private: true}
	require.False(t, private.For(0))
	require.True(t, private.For(1))
}
