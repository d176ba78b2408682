package store

import "time"

// Clock supplies the current time. The mode/shared package provides the
// wall clock and a fixed clock for tests.
type Clock interface {
	Now() time.Time
}

// Sequence hands out identifiers derived from the clock's Unix
// milliseconds. Identifiers strictly increase even when the clock stalls or
// steps backwards, so two records created within the same millisecond still
// get distinct ids. A Sequence is owned by the UI loop and is not safe for
// concurrent use.
type Sequence struct {
	clock Clock
	last  int64
}

// NewSequence returns a Sequence whose first id is greater than floor.
func NewSequence(clock Clock, floor int64) *Sequence {
	return &Sequence{clock: clock, last: floor}
}

// Next returns a fresh identifier.
func (s *Sequence) Next() int64 {
	n := s.clock.Now().UnixMilli()
	if n <= s.last {
		n = s.last + 1
	}
	s.last = n
	return n
}
