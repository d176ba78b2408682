// Package shared provides helpers used by more than one mode controller.
package shared

import (
	"time"

	"github.com/zjrosen/regdesk/internal/store"
)

var (
	_ store.Clock = RealClock{}
	_ store.Clock = FixedClock{}
)

// RealClock returns the actual current time. Use it in the app and
// FixedClock in tests.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }
