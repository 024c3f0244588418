package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishReachesSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var seen []string
	dispatcher.Subscribe(EventFeedbackCreated, func(_ context.Context, event Event) error {
		seen = append(seen, event.FeedbackID)
		return nil
	})
	dispatcher.Subscribe(EventFeedbackAcknowledged, func(_ context.Context, event Event) error {
		t.Fatal("handler for a different event type must not fire")
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventFeedbackCreated, FeedbackID: "f1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"f1"}, seen)
}

func TestDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var called bool
	dispatcher.Subscribe(EventFeedbackUpdated, func(context.Context, Event) error {
		return errors.New("boom")
	})
	dispatcher.Subscribe(EventFeedbackUpdated, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventFeedbackUpdated}))
	assert.True(t, called)
}
