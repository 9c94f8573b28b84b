package sse

import (
	"sync"
	"sync/atomic"
)

// Event is one message pushed to a user's open streams.
type Event struct {
	ID     uint64
	UserID string
	Event  string
	Data   interface{}
}

// Hub fans events out to the open streams of each user. Slow subscribers
// lose events rather than block publishers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
	buffer      int
	seq         atomic.Uint64
	dropped     atomic.Uint64
}

// NewHub creates a hub whose subscriber channels hold buffer events.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
		buffer:      buffer,
	}
}

// Subscribe registers a stream for userID. The returned cancel func is
// idempotent and closes the channel.
func (h *Hub) Subscribe(userID string) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, h.buffer)
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[chan Event]struct{})
	}
	h.subscribers[userID][ch] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers[userID], ch)
			close(ch)
			if len(h.subscribers[userID]) == 0 {
				delete(h.subscribers, userID)
			}
		})
	}

	return ch, cancel
}

// Publish sends name/data to every stream of userID and returns how many
// streams accepted it.
func (h *Hub) Publish(userID, name string, data interface{}) int {
	ev := Event{ID: h.seq.Add(1), UserID: userID, Event: name, Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for ch := range h.subscribers[userID] {
		select {
		case ch <- ev:
			delivered++
		default:
			h.dropped.Add(1)
		}
	}
	return delivered
}

// PublishToMany sends the same event to several users.
func (h *Hub) PublishToMany(userIDs []string, name string, data interface{}) int {
	delivered := 0
	for _, id := range userIDs {
		delivered += h.Publish(id, name, data)
	}
	return delivered
}

// SubscriberCount returns the number of open streams for a user.
func (h *Hub) SubscriberCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[userID])
}

// Dropped returns how many events were discarded because a stream was full.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}
