// Package stream provides an in-process change-notification hub. Write use
// cases publish a change signal after every mutation; background consumers
// such as the retention sweeper subscribe and react opportunistically, so no
// fixed-interval scheduler is needed.
package stream

import "sync"

// Hub fans a coalescing change signal out to subscribers. Signals carry no
// payload; a subscriber that wakes up re-reads whatever state it cares
// about. Bursts of notifications coalesce into a single pending signal per
// subscriber.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]chan struct{}
	nextID int
	closed bool
}

// NewHub creates a Hub with no subscribers.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan struct{})}
}

// Notify signals every subscriber that data changed. It never blocks: a
// subscriber with a signal already pending is skipped.
func (h *Hub) Notify() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	for _, ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribe registers a new subscriber and returns its signal channel plus
// a cancel function. The channel is closed on cancel or when the hub shuts
// down.
func (h *Hub) Subscribe() (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan struct{}, 1)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Close shuts the hub down and closes all subscriber channels.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}
