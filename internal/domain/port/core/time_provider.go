package core

import (
	"context"
	"time"
)

// Duration is the domain's view of an elapsed span
type Duration time.Duration

const (
	Millisecond Duration = Duration(time.Millisecond)
	Second               = Duration(time.Second)
)

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider is the only clock the domain reads. Ledger timestamps, log ids,
// account creation dates and the dashboard's "today" all come from Now.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
}
