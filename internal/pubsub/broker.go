package pubsub

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const defaultBufferSize = 64

// Overflow decides what Publish does when a subscriber's buffer is full.
// Publish never blocks under either policy.
type Overflow int

const (
	// DropNewest skips the event for that subscriber. Suits log lines,
	// which stay readable from the log ring buffer anyway.
	DropNewest Overflow = iota
	// KeepLatest evicts the oldest queued event to make room. Suits
	// reloads, where only the most recent payload matters.
	KeepLatest
)

// Option configures a Broker.
type Option func(*options)

type options struct {
	buffer   int
	overflow Overflow
}

// WithBuffer sets how many events each subscription queues.
func WithBuffer(n int) Option {
	return func(o *options) { o.buffer = max(n, 1) }
}

// WithOverflow sets the full-buffer policy.
func WithOverflow(p Overflow) Option {
	return func(o *options) { o.overflow = p }
}

// Broker delivers each published event to every live subscription.
type Broker[T any] struct {
	opts options

	mu     sync.Mutex
	subs   map[chan Event[T]]struct{}
	done   chan struct{}
	missed atomic.Int64
}

// NewBroker creates a broker. Without options each subscription buffers 64
// events and drops the newest on overflow.
func NewBroker[T any](opts ...Option) *Broker[T] {
	o := options{buffer: defaultBufferSize, overflow: DropNewest}
	for _, opt := range opts {
		opt(&o)
	}
	return &Broker[T]{
		opts: o,
		subs: make(map[chan Event[T]]struct{}),
		done: make(chan struct{}),
	}
}

func (b *Broker[T]) closed() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}

// Subscribe opens a subscription that lasts until ctx is cancelled or the
// broker is closed. Either way the channel is closed.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := make(chan Event[T], b.opts.buffer)
	if b.closed() {
		close(sub)
		return sub
	}
	b.subs[sub] = struct{}{}

	go func() {
		select {
		case <-ctx.Done():
			b.unsubscribe(sub)
		case <-b.done:
		}
	}()
	return sub
}

func (b *Broker[T]) unsubscribe(sub chan Event[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; !ok {
		return
	}
	delete(b.subs, sub)
	close(sub)
}

// Publish sends payload to all subscribers.
func (b *Broker[T]) Publish(eventType EventType, payload T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed() {
		return
	}
	event := Event[T]{Type: eventType, Payload: payload, Timestamp: time.Now()}
	for sub := range b.subs {
		b.deliver(sub, event)
	}
}

// deliver runs with mu held, so no other publisher touches sub meanwhile.
func (b *Broker[T]) deliver(sub chan Event[T], event Event[T]) {
	select {
	case sub <- event:
		return
	default:
	}
	b.missed.Add(1)
	if b.opts.overflow != KeepLatest {
		return
	}
	select {
	case <-sub:
	default:
	}
	select {
	case sub <- event:
	default:
	}
}

// Close shuts down the broker and closes every subscription. Safe to call
// more than once.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed() {
		return
	}
	close(b.done)
	for sub := range b.subs {
		close(sub)
	}
	clear(b.subs)
}

// SubscriberCount returns the number of live subscriptions.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Missed returns how many events a full subscriber did not get in order:
// dropped under DropNewest, evicted under KeepLatest.
func (b *Broker[T]) Missed() int64 {
	return b.missed.Load()
}
