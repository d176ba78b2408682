package pubsub

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Receive returns a command that blocks for the next event on ch. The
// command yields nil once ctx is done or ch is closed, so a model that only
// re-arms on events stops listening by itself.
func Receive[T any](ctx context.Context, ch <-chan Event[T]) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return event
		}
	}
}

// Listener holds one subscription across Update calls. After handling an
// Event[T], return Next() again to keep receiving.
type Listener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// Listen subscribes to broker for the lifetime of ctx.
func Listen[T any](ctx context.Context, broker *Broker[T]) *Listener[T] {
	return &Listener[T]{ctx: ctx, ch: broker.Subscribe(ctx)}
}

// Next returns a command delivering the next event.
func (l *Listener[T]) Next() tea.Cmd {
	return Receive(l.ctx, l.ch)
}
