package mirror

import (
    "context"
    "time"

    "golang.org/x/time/rate"
)

// pacer enforces the minimum interval between any two outbound requests
// across every worker in a run. Burst 1 means each request start must be
// at least one interval after the previous one; the first request goes
// through without waiting. A zero or negative interval disables pacing.
type pacer struct {
    limiter *rate.Limiter
}

func newPacer(interval time.Duration) *pacer {
    if interval <= 0 {
        return &pacer{}
    }
    return &pacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

func (p *pacer) Wait(ctx context.Context) error {
    if p.limiter == nil {
        return nil
    }
    return p.limiter.Wait(ctx)
}
