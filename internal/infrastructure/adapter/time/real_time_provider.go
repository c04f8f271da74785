package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the wall clock
type RealTimeProvider struct {
	location *time.Location
}

// NewRealTimeProvider creates a provider reporting times in loc. A nil loc means local time.
func NewRealTimeProvider(loc *time.Location) core.TimeProvider {
	if loc == nil {
		loc = time.Local
	}
	return &RealTimeProvider{location: loc}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().In(p.location)
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
