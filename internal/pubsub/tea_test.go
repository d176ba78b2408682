package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReceive(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := broker.Subscribe(ctx)
	broker.Publish(ReloadedEvent, "config.yaml")

	event, ok := Receive(ctx, ch)().(Event[string])
	require.True(t, ok, "msg should be Event[string]")
	require.Equal(t, "config.yaml", event.Payload)
}

func TestReceive_Ends(t *testing.T) {
	t.Run("context cancelled", func(t *testing.T) {
		broker := NewBroker[string]()
		defer broker.Close()

		ctx, cancel := context.WithCancel(context.Background())
		ch := broker.Subscribe(ctx)
		cancel()
		require.Nil(t, Receive(ctx, ch)())
	})

	t.Run("broker closed", func(t *testing.T) {
		broker := NewBroker[string]()
		ctx := context.Background()
		ch := broker.Subscribe(ctx)
		broker.Close()
		require.Nil(t, Receive(ctx, ch)())
	})
}

func TestListener(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := Listen(ctx, broker)
	broker.Publish(LoggedEvent, 1)
	broker.Publish(LoggedEvent, 2)

	first, ok := listener.Next()().(Event[int])
	require.True(t, ok)
	second, ok := listener.Next()().(Event[int])
	require.True(t, ok)
	require.Equal(t, []int{1, 2}, []int{first.Payload, second.Payload})

	cancel()
	require.Eventually(t, func() bool { return broker.SubscriberCount() == 0 }, time.Second, 5*time.Millisecond)
	require.Nil(t, listener.Next()())
}
