// Package events provides the in-process broadcast hub that links the
// collections together. Dispatch is synchronous: Publish returns only
// after every subscriber has run, so a caller that publishes inside a
// mutation sees all derived state settled before replying.
package events

import (
	"context"
	"sync"
)

// Topic names a broadcast channel.
type Topic string

const (
	// TopicProjectsChanged fires after any project mutation.
	TopicProjectsChanged Topic = "projects.changed"
	// TopicCurrencyChanged fires after the display currency changes.
	TopicCurrencyChanged Topic = "currency.changed"
)

// Handler consumes one broadcast.
type Handler func(ctx context.Context)

// Hub fans broadcasts out to subscribers in subscription order.
type Hub struct {
	mu   sync.RWMutex
	subs map[Topic][]Handler
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[Topic][]Handler)}
}

// Subscribe registers a handler for a topic. Intended for wiring time;
// handlers cannot be removed.
func (h *Hub) Subscribe(topic Topic, fn Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs[topic] = append(h.subs[topic], fn)
}

// Publish runs every handler subscribed to the topic, synchronously, in
// subscription order.
func (h *Hub) Publish(ctx context.Context, topic Topic) {
	h.mu.RLock()
	handlers := make([]Handler, len(h.subs[topic]))
	copy(handlers, h.subs[topic])
	h.mu.RUnlock()

	for _, fn := range handlers {
		fn(ctx)
	}
}
