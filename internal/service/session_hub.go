package service

import (
	"sync"

	"go.uber.org/zap"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain"
)

// SessionHub fans session lifecycle events out to subscribers. It replaces
// ambient auth state with an explicit subscription: anything that cares
// about sign-in, sign-out, or token refresh subscribes here instead of
// polling a global.
type SessionHub struct {
	log *zap.Logger

	mu     sync.Mutex
	subs   map[int]chan domain.SessionEvent
	nextID int
	closed bool
}

// Each subscriber gets a small buffer; a subscriber that stops draining
// loses events rather than blocking publishers.
const subscriberBuffer = 16

func NewSessionHub(log *zap.Logger) *SessionHub {
	return &SessionHub{
		log:  log,
		subs: make(map[int]chan domain.SessionEvent),
	}
}

// Subscribe registers a listener and returns its channel plus an
// unsubscribe func. Unsubscribing is idempotent and closes the channel.
func (h *SessionHub) Subscribe() (<-chan domain.SessionEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan domain.SessionEvent, subscriberBuffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}
	h.subs[id] = ch

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, unsubscribe
}

// Publish delivers the event to every live subscriber. Full subscriber
// buffers drop the event for that subscriber only.
func (h *SessionHub) Publish(ev domain.SessionEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	for id, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			h.log.Warn("session subscriber buffer full, dropping event",
				zap.Int("subscriber", id),
				zap.String("kind", string(ev.Kind)),
			)
		}
	}
}

// Close shuts the hub down and closes all subscriber channels.
func (h *SessionHub) Close() {
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
