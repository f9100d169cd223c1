// internal/tracker/countdown.go
package tracker

import (
	"fmt"
	"time"

	"github.com/highlite-tools/spawnwatch/internal/notify"
)

// advanceTimers recomputes the remaining time for every timer, fires
// the one-shot notifications, and sweeps out fired timers past the
// retention window. Each flag flips false->true exactly once per
// timer lifetime; repeated ticks at the same clock value are no-ops.
func (t *Tracker) advanceTimers(now time.Time) {
	for id, tm := range t.timers {
		remaining := tm.Remaining(now)

		if remaining == 0 && !tm.spawnedFired {
			tm.spawnedFired = true
			t.notifier.Notify(notify.Notification{
				Title:    "NPC spawned",
				Body:     fmt.Sprintf("%s has respawned", tm.Name),
				Severity: notify.SeverityInfo,
			})
		} else if remaining > 0 && remaining <= int(t.cfg.AlertThreshold/time.Second) && !tm.alertFired {
			tm.alertFired = true
			t.notifier.Notify(notify.Notification{
				Title:    "NPC spawning soon",
				Body:     fmt.Sprintf("%s spawns in %ds", tm.Name, remaining),
				Severity: notify.SeverityWarning,
			})
		}

		if tm.spawnedFired && now.Sub(tm.SpawnAt) > spawnedRetention {
			delete(t.timers, id)
		}
	}
}
