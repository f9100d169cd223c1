package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/highlite-tools/spawnwatch/internal/notify"
	"github.com/highlite-tools/spawnwatch/internal/snapshot"
)

// killEntity drives an entity through death and despawn so the
// tracker registers a timer for it.
func killEntity(tr *Tracker, src *fakeSource, e snapshot.Entity) {
	e.Health = 10
	src.entities = []snapshot.Entity{e}
	tr.Tick()
	e.Health = 0
	src.entities = []snapshot.Entity{e}
	tr.Tick()
	src.entities = nil
	tr.Tick()
}

func warnings(notes []notify.Notification) []notify.Notification {
	var out []notify.Notification
	for _, n := range notes {
		if n.Severity == notify.SeverityWarning {
			out = append(out, n)
		}
	}
	return out
}

func infos(notes []notify.Notification) []notify.Notification {
	var out []notify.Notification
	for _, n := range notes {
		if n.Severity == notify.SeverityInfo {
			out = append(out, n)
		}
	}
	return out
}

func TestCountdown_AlertFiresOnceInsideThreshold(t *testing.T) {
	cfg := testConfig()
	cfg.RespawnOverride = map[string]time.Duration{"Moss King": 60 * time.Second}
	tr, src, notes, clock := newTestTracker(t, cfg)

	killEntity(tr, src, snapshot.Entity{ID: "npc-1", Name: "Moss King", Level: 60})
	assert.Empty(t, warnings(notes.notes), "no alert while remaining is above the threshold")

	// 46s elapsed: remaining = 14, inside the 15s threshold.
	*clock = clock.Add(46 * time.Second)
	tr.Tick()

	w := warnings(notes.notes)
	require.Len(t, w, 1)
	assert.Equal(t, "NPC spawning soon", w[0].Title)
	assert.Contains(t, w[0].Body, "Moss King")
	assert.Contains(t, w[0].Body, "14s")

	// Repeated ticks, including ones with no clock movement, never
	// re-fire the alert.
	tr.Tick()
	*clock = clock.Add(5 * time.Second)
	tr.Tick()
	assert.Len(t, warnings(notes.notes), 1)
}

func TestCountdown_SpawnedFiresOnceAtZero(t *testing.T) {
	cfg := testConfig()
	cfg.RespawnOverride = map[string]time.Duration{"Moss King": 60 * time.Second}
	tr, src, notes, clock := newTestTracker(t, cfg)

	killEntity(tr, src, snapshot.Entity{ID: "npc-1", Name: "Moss King", Level: 60})

	*clock = clock.Add(60 * time.Second)
	tr.Tick()

	sp := infos(notes.notes)
	require.Len(t, sp, 1)
	assert.Equal(t, "NPC spawned", sp[0].Title)
	assert.Contains(t, sp[0].Body, "Moss King")

	tr.Tick()
	*clock = clock.Add(time.Second)
	tr.Tick()
	assert.Len(t, infos(notes.notes), 1, "spawned fires exactly once per timer lifetime")
}

func TestCountdown_NoLateAlertAfterSpawn(t *testing.T) {
	cfg := testConfig()
	cfg.RespawnOverride = map[string]time.Duration{"Moss King": 60 * time.Second}
	tr, src, notes, clock := newTestTracker(t, cfg)

	killEntity(tr, src, snapshot.Entity{ID: "npc-1", Name: "Moss King", Level: 60})

	// Jump straight past the spawn time without ever ticking inside
	// the alert window.
	*clock = clock.Add(61 * time.Second)
	tr.Tick()
	tr.Tick()

	assert.Len(t, infos(notes.notes), 1)
	assert.Empty(t, warnings(notes.notes), "a timer that already spawned never emits a stale alert")
}

func TestCountdown_SweepRemovesSpawnedTimersAfterRetention(t *testing.T) {
	cfg := testConfig()
	cfg.RespawnOverride = map[string]time.Duration{"Moss King": 60 * time.Second}
	tr, src, _, clock := newTestTracker(t, cfg)

	killEntity(tr, src, snapshot.Entity{ID: "npc-1", Name: "Moss King", Level: 60})

	spawnAt := tr.Timers()[0].SpawnAt

	// Exactly 30s after spawn: still retained (strictly-greater sweep).
	*clock = spawnAt.Add(30 * time.Second)
	tr.Tick()
	assert.Len(t, tr.Timers(), 1)

	*clock = spawnAt.Add(30*time.Second + time.Millisecond)
	tr.Tick()
	assert.Empty(t, tr.Timers())
}

func TestCountdown_SweepSparesUnspawnedTimers(t *testing.T) {
	tr, src, _, clock := newTestTracker(t, testConfig())

	killEntity(tr, src, snapshot.Entity{ID: "npc-1", Name: "Moss King", Level: 60})

	// Well before spawn the sweep has nothing to do.
	*clock = clock.Add(50 * time.Second)
	tr.Tick()
	assert.Len(t, tr.Timers(), 1)
}

func TestCountdown_StalledClockIsZeroElapsed(t *testing.T) {
	cfg := testConfig()
	cfg.RespawnOverride = map[string]time.Duration{"Moss King": 60 * time.Second}
	tr, src, _, _ := newTestTracker(t, cfg)

	killEntity(tr, src, snapshot.Entity{ID: "npc-1", Name: "Moss King", Level: 60})
	before := tr.Timers()[0]

	// The clock does not advance between these ticks.
	tr.Tick()
	tr.Tick()

	after := tr.Timers()[0]
	assert.Equal(t, before.SpawnAt, after.SpawnAt, "spawn time is fixed at creation")

	at := before.SpawnAt.Add(-10 * time.Second)
	assert.Equal(t, before.Remaining(at), after.Remaining(at))
}

func TestRemaining_ClampsAtZero(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	tm := Timer{SpawnAt: now.Add(-5 * time.Second)}
	assert.Equal(t, 0, tm.Remaining(now))

	tm = Timer{SpawnAt: now.Add(1500 * time.Millisecond)}
	assert.Equal(t, 1, tm.Remaining(now), "remaining is floored to whole seconds")
}
