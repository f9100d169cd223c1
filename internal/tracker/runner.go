// internal/tracker/runner.go
package tracker

import (
	"context"
	"time"
)

// Run starts the ticker loop and drives Tick at the configured
// cadence until the context is done. One goroutine. Ticks never
// overlap. No retries beyond the next tick itself.
func (t *Tracker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-ticker.C:
			t.Tick()
		}
	}
}
