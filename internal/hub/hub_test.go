package hub

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcast_OnlyReachesThatUser(t *testing.T) {
	h := New()
	alice, bob := NewClient(), NewClient()
	h.Subscribe(1, alice)
	h.Subscribe(2, bob)

	h.Broadcast(1, Event{Type: EntryAdded, Payload: map[string]int{"gameId": 7}})

	require.Len(t, alice, 1)
	assert.Len(t, bob, 0)

	var got Event
	require.NoError(t, json.Unmarshal(<-alice, &got))
	assert.Equal(t, EntryAdded, got.Type)
	assert.Equal(t, map[string]any{"gameId": float64(7)}, got.Payload)
}

func TestBroadcast_SkipsFullClient(t *testing.T) {
	h := New()
	slow := make(Client)
	h.Subscribe(1, slow)

	// Must not block on an unbuffered client nobody reads from.
	h.Broadcast(1, Event{Type: EntryRemoved})
}

func TestUnsubscribe_ClosesClient(t *testing.T) {
	h := New()
	c := NewClient()
	h.Subscribe(3, c)
	assert.Equal(t, 1, h.Subscribers(3))

	h.Unsubscribe(3, c)
	assert.Equal(t, 0, h.Subscribers(3))

	_, open := <-c
	assert.False(t, open)

	// A second unsubscribe is a no-op.
	h.Unsubscribe(3, c)
}
