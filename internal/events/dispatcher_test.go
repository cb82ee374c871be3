package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var seen []string

	d.Subscribe(EventBookingCreated, func(_ context.Context, e Event) error {
		seen = append(seen, "first")
		return nil
	})
	d.Subscribe(EventBookingCreated, func(_ context.Context, e Event) error {
		seen = append(seen, "second")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventBookingCreated, Payload: map[string]any{"bookingId": "b1"}})
	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, seen)
}

func TestHandlerErrorDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()
	reached := false

	d.Subscribe(EventPaymentRecorded, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventPaymentRecorded, func(context.Context, Event) error {
		reached = true
		return nil
	})

	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventPaymentRecorded}))
	assert.True(t, reached)
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventLeaseEnded}))
}
