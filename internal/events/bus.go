// Package events provides the in-process event bus that connects record
// stores, view projectors and the SSE stream. Publishing is synchronous:
// every mutation to a store or to filter/sort criteria is followed by a
// recompute before the publishing call returns.
package events

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// EventType identifies an event on the bus.
type EventType string

const (
	OrdersReplaced     EventType = "orders_replaced"
	ReviewsReplaced    EventType = "reviews_replaced"
	OrderStatusMutated EventType = "order_status_mutated"
	ReviewDeleted      EventType = "review_deleted"
	CriteriaChanged    EventType = "criteria_changed"
	ViewRecomputed     EventType = "view_recomputed"
	FetchFailed        EventType = "fetch_failed"
)

// Event is a single published event.
type Event struct {
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Module    string                 `json:"module"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// Handler processes a published event.
type Handler func(event *Event)

// Bus is a synchronous in-process pub/sub bus. Handlers run on the publishing
// goroutine; a panicking handler is recovered and logged so one bad subscriber
// cannot take down a request.
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
	all      []Handler
	log      zerolog.Logger
}

// NewBus creates a new event bus.
func NewBus(log zerolog.Logger) *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
		log:      log.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe registers a handler for a single event type.
func (b *Bus) Subscribe(t EventType, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}

// SubscribeAll registers a handler for every event type. Used by the SSE
// stream to forward all activity to connected clients.
func (b *Bus) SubscribeAll(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.all = append(b.all, h)
}

// Publish dispatches an event to all matching handlers synchronously.
func (b *Bus) Publish(t EventType, module string, data map[string]interface{}) {
	event := &Event{
		Type:      t,
		Timestamp: time.Now(),
		Module:    module,
		Data:      data,
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers[t])+len(b.all))
	handlers = append(handlers, b.handlers[t]...)
	handlers = append(handlers, b.all...)
	b.mu.RUnlock()

	for _, h := range handlers {
		b.dispatch(h, event)
	}
}

func (b *Bus) dispatch(h Handler, event *Event) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().
				Interface("panic", r).
				Str("event_type", string(event.Type)).
				Msg("Event handler panicked")
		}
	}()
	h(event)
}
