package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubDeliversToTableSubscribersOnly(t *testing.T) {
	hub := NewHub()

	var rooms, reviews []Event
	hub.Subscribe("rooms", func(ev Event) { rooms = append(rooms, ev) })
	hub.Subscribe("reviews", func(ev Event) { reviews = append(reviews, ev) })

	hub.Notify("rooms", ActionInsert, 7)

	require.Len(t, rooms, 1)
	assert.Equal(t, Event{Type: EventChange, Table: "rooms", Action: ActionInsert, ID: 7}, rooms[0])
	assert.Empty(t, reviews)
}

func TestHubFanOut(t *testing.T) {
	hub := NewHub()

	var a, b int
	hub.Subscribe("rooms", func(Event) { a++ })
	hub.Subscribe("rooms", func(Event) { b++ })

	hub.Notify("rooms", ActionDelete, 1)
	hub.Notify("rooms", ActionUpdate, 2)

	assert.Equal(t, 2, a)
	assert.Equal(t, 2, b)
}

func TestHubUnsubscribeStopsDeliveryAndIsIdempotent(t *testing.T) {
	hub := NewHub()

	calls := 0
	unsub := hub.Subscribe("rooms", func(Event) { calls++ })

	hub.Notify("rooms", ActionInsert, 1)
	unsub()
	unsub() // second call is a no-op
	hub.Notify("rooms", ActionInsert, 2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, hub.SubscriberCount("rooms"))
}

func TestHubRepeatedSubscribeCyclesDoNotLeak(t *testing.T) {
	hub := NewHub()

	// A screen mounting and unmounting must not accumulate channels.
	for i := 0; i < 10; i++ {
		unsub := hub.Subscribe("facilities", func(Event) {})
		unsub()
	}
	assert.Equal(t, 0, hub.SubscriberCount("facilities"))

	calls := 0
	hub.Subscribe("facilities", func(Event) { calls++ })
	hub.Notify("facilities", ActionUpdate, 3)
	assert.Equal(t, 1, calls)
}

func TestHubNotifyWithNoSubscribers(t *testing.T) {
	hub := NewHub()
	// Must not panic or block.
	hub.Notify("services", ActionDelete, 9)
}

func TestHubCallbackMayUnsubscribeItself(t *testing.T) {
	hub := NewHub()

	calls := 0
	var unsub func()
	unsub = hub.Subscribe("rooms", func(Event) {
		calls++
		unsub()
	})

	hub.Notify("rooms", ActionInsert, 1)
	hub.Notify("rooms", ActionInsert, 2)

	assert.Equal(t, 1, calls)
}
