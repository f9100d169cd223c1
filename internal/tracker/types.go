// internal/tracker/types.go
package tracker

import "time"

// Timer projects the future respawn of one tracked NPC.
// SpawnAt is fixed at creation and never recomputed; only the
// countdown pass flips the one-shot flags.
type Timer struct {
	ID             string
	Name           string
	X              int
	Z              int
	Level          int
	SpawnAt        time.Time
	RespawnSeconds int

	alertFired   bool
	spawnedFired bool
}

// Remaining returns the whole seconds until the projected spawn,
// clamped at zero. A clock that does not advance between ticks
// yields the same value, never a negative one.
func (t Timer) Remaining(now time.Time) int {
	d := t.SpawnAt.Sub(now)
	if d <= 0 {
		return 0
	}
	return int(d / time.Second)
}

// healthRecord is the per-entity state carried between ticks.
// Position and level are only trustworthy once captured at the
// death transition; the live record stops being readable after
// the entity leaves the registry.
type healthRecord struct {
	name        string
	lastHealth  int
	x           int
	z           int
	level       int
	ticksUnseen int
}
