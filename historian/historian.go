package historian

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/event"
	"github.com/redis/go-redis/v9"
)

const publishTimeout = 2 * time.Second

// ActionRecord is one table event as it is pushed onto the queue.
type ActionRecord struct {
	MatchID       uuid.UUID              `json:"match_id"`
	ActionIndex   int                    `json:"action_index"`
	ActorSeat     int                    `json:"actor_seat"`
	ActionType    string                 `json:"action_type"`
	ActionPayload map[string]interface{} `json:"action_payload"`
	Timestamp     int64                  `json:"timestamp"`
}

// NewRecord flattens an event. Only the fields that mean something for the
// event type end up in the payload.
func NewRecord(e event.Event, index int, at time.Time) ActionRecord {
	payload := map[string]interface{}{}
	if e.PlayerName != "" {
		payload["player"] = e.PlayerName
	}
	switch e.Type {
	case event.FirstCardPlayed, event.CardPlayed, event.CardRejected:
		payload["card"] = cardPayload(e.Card)
	}
	if e.Effect != "" {
		payload["effect"] = e.Effect
	}
	if len(e.Cards) > 0 {
		cards := make([]map[string]interface{}, 0, len(e.Cards))
		for _, c := range e.Cards {
			cards = append(cards, cardPayload(c))
		}
		payload["cards"] = cards
	}
	if e.Count != 0 {
		payload["count"] = e.Count
	}
	if e.Color.Valid() {
		payload["color"] = e.Color.Name()
	}
	if e.Reason != "" {
		payload["reason"] = e.Reason
	}
	if e.Private {
		payload["private"] = true
	}
	return ActionRecord{
		MatchID:       e.MatchID,
		ActionIndex:   index,
		ActorSeat:     e.PlayerID,
		ActionType:    string(e.Type),
		ActionPayload: payload,
		Timestamp:     at.UnixMilli(),
	}
}

func cardPayload(c card.Card) map[string]interface{} {
	payload := map[string]interface{}{
		"kind":  c.Kind().String(),
		"color": c.Color().Name(),
	}
	if c.Kind() == card.Number {
		payload["number"] = c.Number()
	}
	return payload
}

// Historian pushes every event it hears onto a Redis list. Records are
// published by a background worker; when the worker falls behind new
// records are dropped rather than holding up the table.
type Historian struct {
	client  *redis.Client
	queue   string
	records chan ActionRecord
	done    chan struct{}

	lock    sync.Mutex
	closed  bool
	indices map[uuid.UUID]int
}

func Connect(ctx context.Context, addr string, db int, queue string) (*Historian, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}
	log.Infof("historian publishing to %s on %s\n", queue, addr)
	return New(client, queue), nil
}

// New starts publishing through an already configured client.
func New(client *redis.Client, queue string) *Historian {
	h := &Historian{
		client:  client,
		queue:   queue,
		records: make(chan ActionRecord, 256),
		done:    make(chan struct{}),
		indices: map[uuid.UUID]int{},
	}
	async.Async(h.run)
	return h
}

func (h *Historian) OnEvent(e event.Event) {
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.closed {
		return
	}
	index := h.indices[e.MatchID]
	if e.Type == event.GameEnded || e.Type == event.MatchAborted {
		delete(h.indices, e.MatchID)
	} else {
		h.indices[e.MatchID] = index + 1
	}
	select {
	case h.records <- NewRecord(e, index, time.Now()):
	default:
		log.Errorf("historian queue full, dropped %s #%d of match %s\n", e.Type, index, e.MatchID)
	}
}

// Publish pushes a single record onto the queue.
func (h *Historian) Publish(ctx context.Context, record ActionRecord) error {
	if err := h.client.RPush(ctx, h.queue, json.Marshal(record)).Err(); err != nil {
		return fmt.Errorf("rpush to %s: %w", h.queue, err)
	}
	return nil
}

func (h *Historian) run() {
	defer close(h.done)
	for record := range h.records {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		if err := h.Publish(ctx, record); err != nil {
			log.Error(err)
		}
		cancel()
	}
}

// Close publishes what is still queued and closes the connection.
func (h *Historian) Close() error {
	h.lock.Lock()
	if h.closed {
		h.lock.Unlock()
		return nil
	}
	h.closed = true
	close(h.records)
	h.lock.Unlock()
	<-h.done
	return h.client.Close()
}
