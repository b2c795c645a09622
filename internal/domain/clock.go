package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock stamps ProcessedAt on classified profiles. Tests inject a fake via SetClock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source used for ProcessedAt. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// processedAt is the ProcessedAt stamp for a profile classified now, always in UTC
// so the processed_at header and JSON field agree across hosts.
func processedAt() time.Time {
	return clock.Now().UTC()
}
