package event_bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_Publish(t *testing.T) {
	t.Run("delivers to subscribers of the matching type", func(t *testing.T) {
		bus := NewEventBus()
		var received []Event
		bus.Subscribe(PlanCreatedEvent, func(e Event) error {
			received = append(received, e)
			return nil
		})
		bus.Subscribe(PlanDeletedEvent, func(e Event) error {
			t.Error("handler for a different event type must not fire")
			return nil
		})

		err := bus.Publish(NewEvent(context.Background(), PlanCreatedEvent, PlanCreated{Uid: "abc"}))

		require.NoError(t, err)
		require.Len(t, received, 1)
		payload, ok := received[0].Data.(PlanCreated)
		require.True(t, ok)
		assert.Equal(t, "abc", payload.Uid)
	})

	t.Run("a failing handler does not stop the remaining ones", func(t *testing.T) {
		bus := NewEventBus()
		var secondRan bool
		bus.Subscribe(PlanCreatedEvent, func(e Event) error {
			return errors.New("boom")
		})
		bus.Subscribe(PlanCreatedEvent, func(e Event) error {
			secondRan = true
			return nil
		})

		err := bus.Publish(NewEvent(context.Background(), PlanCreatedEvent, PlanCreated{}))

		assert.Error(t, err)
		assert.True(t, secondRan)
	})

	t.Run("a panicking handler is contained", func(t *testing.T) {
		bus := NewEventBus()
		bus.Subscribe(PlanCreatedEvent, func(e Event) error {
			panic("handler exploded")
		})

		err := bus.Publish(NewEvent(context.Background(), PlanCreatedEvent, PlanCreated{}))

		assert.Error(t, err)
	})

	t.Run("a cancelled context aborts the publish", func(t *testing.T) {
		bus := NewEventBus()
		var ran bool
		bus.Subscribe(PlanCreatedEvent, func(e Event) error {
			ran = true
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := bus.Publish(NewEvent(ctx, PlanCreatedEvent, PlanCreated{}))

		assert.Error(t, err)
		assert.False(t, ran)
	})
}
