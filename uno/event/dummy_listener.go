package event

import "sync"

type DummyListener struct {
	sync.Mutex
	receivedEvents []Event
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedEvents: make([]Event, 0)}
}

func (l *DummyListener) ReceivedEvents() []Event {
	l.Lock()
	defer l.Unlock()
	events := make([]Event, len(l.receivedEvents))
	copy(events, l.receivedEvents)
	return events
}

// ReceivedTypes returns the types of the received events, in order.
func (l *DummyListener) ReceivedTypes() []Type {
	var types []Type
	for _, e := range l.ReceivedEvents() {
		types = append(types, e.Type)
	}
	return types
}

func (l *DummyListener) OnEvent(e Event) {
	l.Lock()
	defer l.Unlock()
	l.receivedEvents = append(l.receivedEvents, e)
}
