package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe(TopicRequests)
	defer cancel()

	hub.Publish(TopicRequests, Event{Topic: TopicRequests, Event: "requests.changed"})

	ev := <-ch
	assert.Equal(t, "requests.changed", ev.Event)
}

func TestHub_TopicsAreIsolated(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe(TopicEmployees)
	defer cancel()

	hub.Publish(TopicRequests, Event{Topic: TopicRequests, Event: "requests.changed"})

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event on employees topic: %v", ev)
	default:
	}
}

func TestHub_CancelStopsDelivery(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe(TopicEmployees)
	require.Equal(t, 1, hub.SubscriberCount(TopicEmployees))

	cancel()
	assert.Equal(t, 0, hub.SubscriberCount(TopicEmployees))

	// Channel is closed; publishing afterwards must not panic or deliver.
	hub.Publish(TopicEmployees, Event{Topic: TopicEmployees, Event: "employees.changed"})
	_, open := <-ch
	assert.False(t, open)
}

func TestHub_CancelIsIdempotent(t *testing.T) {
	hub := NewHub()
	_, cancel := hub.Subscribe(TopicEmployees)
	cancel()
	assert.NotPanics(t, func() { cancel() })
}
