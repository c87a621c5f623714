// internals/features/chat/hub/hub.go
package hub

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

const (
	clientBufferSize = 32
	dedupeWindow     = 256
)

// Event is the wire payload pushed to subscribers of a channel.
type Event struct {
	MessageID uuid.UUID `json:"message_id"`
	ChannelID uuid.UUID `json:"channel_id"`
	Payload   any       `json:"payload"`
}

// Client is one websocket subscriber. Each client remembers the ids it
// has already been handed so a message arriving twice (HTTP write plus a
// later replay) renders once.
type Client struct {
	ID       uuid.UUID
	Send     chan Event
	seen     map[uuid.UUID]struct{}
	seenFifo []uuid.UUID
	closed   bool
	mu       sync.Mutex
}

// deliver enqueues the event unless this client already saw the message
// id. Slow clients get dropped events rather than blocking the hub.
// The send stays under cl.mu so it cannot race Unsubscribe closing Send.
func (cl *Client) deliver(ev Event) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if cl.closed {
		return false
	}
	if _, dup := cl.seen[ev.MessageID]; dup {
		return false
	}
	cl.seen[ev.MessageID] = struct{}{}
	cl.seenFifo = append(cl.seenFifo, ev.MessageID)
	if len(cl.seenFifo) > dedupeWindow {
		oldest := cl.seenFifo[0]
		cl.seenFifo = cl.seenFifo[1:]
		delete(cl.seen, oldest)
	}

	select {
	case cl.Send <- ev:
		return true
	default:
		log.Printf("[CHAT] client %s buffer full, event dropped", cl.ID)
		return false
	}
}

// shutdown marks the client closed and closes Send exactly once.
func (cl *Client) shutdown() {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	if cl.closed {
		return
	}
	cl.closed = true
	close(cl.Send)
}

// Hub fans chat events out to the websocket subscribers of each channel.
type Hub struct {
	mu       sync.RWMutex
	channels map[uuid.UUID]map[*Client]struct{}
}

func New() *Hub {
	return &Hub{channels: make(map[uuid.UUID]map[*Client]struct{})}
}

// Subscribe registers a new client on a channel and returns it.
func (h *Hub) Subscribe(channelID uuid.UUID) *Client {
	cl := &Client{
		ID:   uuid.New(),
		Send: make(chan Event, clientBufferSize),
		seen: make(map[uuid.UUID]struct{}),
	}
	h.mu.Lock()
	if h.channels[channelID] == nil {
		h.channels[channelID] = make(map[*Client]struct{})
	}
	h.channels[channelID][cl] = struct{}{}
	h.mu.Unlock()
	return cl
}

// Unsubscribe removes the client and closes its send channel.
func (h *Hub) Unsubscribe(channelID uuid.UUID, cl *Client) {
	h.mu.Lock()
	if subs := h.channels[channelID]; subs != nil {
		if _, ok := subs[cl]; ok {
			delete(subs, cl)
			cl.shutdown()
		}
		if len(subs) == 0 {
			delete(h.channels, channelID)
		}
	}
	h.mu.Unlock()
}

// Broadcast pushes an event to every subscriber of its channel and
// returns how many clients accepted it.
func (h *Hub) Broadcast(ev Event) int {
	h.mu.RLock()
	subs := h.channels[ev.ChannelID]
	clients := make([]*Client, 0, len(subs))
	for cl := range subs {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, cl := range clients {
		if cl.deliver(ev) {
			delivered++
		}
	}
	return delivered
}

// Subscribers reports the current listener count for a channel.
func (h *Hub) Subscribers(channelID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[channelID])
}
