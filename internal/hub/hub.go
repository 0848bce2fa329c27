// Package hub fans collection changes out to a user's open event streams.
package hub

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

// Event types published on collection changes.
const (
	EntryAdded   = "collection.added"
	EntryUpdated = "collection.updated"
	EntryRemoved = "collection.removed"
	Settings     = "settings.updated"
)

// Event is one change notification sent to a user's streams.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Client is a single stream connection. The SSE handler reads from it.
type Client chan []byte

// NewClient returns a client with room for a few pending events.
func NewClient() Client {
	return make(Client, 16)
}

// Hub tracks the open streams of every user.
type Hub struct {
	users map[uint]map[Client]struct{}
	mu    sync.RWMutex
}

// New creates an empty Hub.
func New() *Hub {
	return &Hub{
		users: make(map[uint]map[Client]struct{}),
	}
}

// Subscribe attaches a client to a user's streams.
func (h *Hub) Subscribe(userID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.users[userID]; !ok {
		h.users[userID] = make(map[Client]struct{})
	}
	h.users[userID][client] = struct{}{}
}

// Unsubscribe detaches a client and closes it.
func (h *Hub) Unsubscribe(userID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.users[userID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client)
	if len(clients) == 0 {
		delete(h.users, userID)
	}
}

// Subscribers reports how many streams a user has open.
func (h *Hub) Subscribers(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID])
}

// Broadcast sends event to every stream of userID. Slow clients miss events
// rather than block the sender.
func (h *Hub) Broadcast(userID uint, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.users[userID]
	if !ok {
		return
	}

	message, err := json.Marshal(event)
	if err != nil {
		logrus.WithError(err).WithField("type", event.Type).Error("hub: failed to encode event")
		return
	}

	for client := range clients {
		select {
		case client <- message:
		default:
			logrus.WithField("user_id", userID).Warn("hub: dropping event for slow client")
		}
	}
}
