package session

import (
	"context"
	"time"

	"github.com/fwojciec/querysum"
	"golang.org/x/time/rate"
)

// DefaultPause is the delay between consecutive summary requests.
const DefaultPause = 2 * time.Second

// Ensure pacers implement querysum.Pacer at compile time.
var (
	_ querysum.Pacer = (*FixedPacer)(nil)
	_ querysum.Pacer = (*IntervalPacer)(nil)
)

// FixedPacer sleeps for Delay before every request except the first.
type FixedPacer struct {
	Delay time.Duration

	// Sleep waits for d or until ctx is done. Defaults to a timer.
	Sleep func(ctx context.Context, d time.Duration) error

	started bool
}

// NewFixedPacer creates a FixedPacer with the given delay.
func NewFixedPacer(delay time.Duration) *FixedPacer {
	return &FixedPacer{Delay: delay}
}

// Pause sleeps for Delay unless this is the first call.
func (p *FixedPacer) Pause(ctx context.Context) error {
	if !p.started {
		p.started = true
		return ctx.Err()
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	return sleep(ctx, p.Delay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// IntervalPacer keeps at least an interval between the starts of
// consecutive requests. Time spent generating counts toward the interval,
// so slow responses are not followed by an extra full delay.
type IntervalPacer struct {
	limiter *rate.Limiter
}

// NewIntervalPacer creates an IntervalPacer. A non-positive interval
// disables pacing.
func NewIntervalPacer(interval time.Duration) *IntervalPacer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &IntervalPacer{limiter: rate.NewLimiter(limit, 1)}
}

// Pause waits until the interval since the previous call has elapsed.
func (p *IntervalPacer) Pause(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
