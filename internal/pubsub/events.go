// Package pubsub fans events out from a publisher to any number of
// subscribers and bridges subscriptions into the Bubble Tea update loop.
// regdesk uses it for log lines and for configuration reloads.
package pubsub

import "time"

// EventType names what happened to the payload.
type EventType string

const (
	// LoggedEvent carries a formatted log line.
	LoggedEvent EventType = "logged"
	// ReloadedEvent carries a configuration read after the file changed.
	ReloadedEvent EventType = "reloaded"
)

// Event is one published payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}
