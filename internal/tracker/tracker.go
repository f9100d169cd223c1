// internal/tracker/tracker.go
package tracker

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/highlite-tools/spawnwatch/internal/notify"
	"github.com/highlite-tools/spawnwatch/internal/snapshot"
	"github.com/highlite-tools/spawnwatch/internal/status"
)

// spawnedRetention is how long a fired timer stays visible after its
// projected spawn time before the sweep removes it.
const spawnedRetention = 30 * time.Second

// Config is the minimal runtime config the tracker needs.
// Keyword and blacklist matching is case-insensitive; override
// lookups are exact-name.
type Config struct {
	Interval        time.Duration
	DefaultRespawn  time.Duration
	AlertThreshold  time.Duration
	MinCombatLevel  int
	TrackBosses     bool
	BossKeywords    []string
	Blacklist       []string
	RespawnOverride map[string]time.Duration
	RecordTTLTicks  int
}

// Tracker owns the health-record and timer maps. All map mutation
// happens inside Tick; the mutex exists only because the HTTP
// presentation layer reads concurrently with the tick loop.
type Tracker struct {
	mu       sync.Mutex
	cfg      Config
	source   snapshot.Source
	notifier notify.Notifier
	logger   *zap.Logger
	now      func() time.Time

	records map[string]*healthRecord
	timers  map[string]*Timer
	health  string
	ticks   uint64
	seen    int
	lastErr string
	lastAt  time.Time
}

// New creates a tracker with immutable config.
func New(cfg Config, source snapshot.Source, notifier notify.Notifier, logger *zap.Logger) (*Tracker, error) {
	if source == nil {
		return nil, errors.New("tracker: source required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("tracker: interval must be > 0")
	}
	if cfg.DefaultRespawn <= 0 {
		return nil, errors.New("tracker: default respawn must be > 0")
	}
	if cfg.AlertThreshold < 0 {
		return nil, errors.New("tracker: alert threshold must be >= 0")
	}
	if cfg.RecordTTLTicks <= 0 {
		return nil, errors.New("tracker: record ttl ticks must be > 0")
	}
	if notifier == nil {
		notifier = notify.Multi{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg.BossKeywords = lowercaseAll(cfg.BossKeywords)
	cfg.Blacklist = lowercaseAll(cfg.Blacklist)

	return &Tracker{
		cfg:      cfg,
		source:   source,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		records:  make(map[string]*healthRecord),
		timers:   make(map[string]*Timer),
		health:   status.HealthUnknown,
	}, nil
}

// Tick performs exactly one poll cycle: read the snapshot, detect
// deaths and confirmed despawns, then advance every countdown.
// A failed snapshot read degrades to an empty set for this tick.
func (t *Tracker) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.ticks++
	t.lastAt = now

	entities, err := t.source.Entities()
	if err != nil {
		// Not fatal: the registry may simply not be up yet.
		entities = nil
		t.health = status.HealthDegraded
		t.lastErr = err.Error()
		t.logger.Debug("entity source unavailable", zap.Error(err))
	} else {
		t.health = status.HealthOK
		t.lastErr = ""
	}
	t.seen = len(entities)

	seen := make(map[string]struct{}, len(entities))
	for _, e := range entities {
		seen[e.ID] = struct{}{}
		t.observe(e)
	}
	t.confirmDespawns(seen, now)
	t.advanceTimers(now)

	t.logger.Debug("tick complete",
		zap.Uint64("tick", t.ticks),
		zap.Int("entities", len(entities)),
		zap.Int("records", len(t.records)),
		zap.Int("timers", len(t.timers)))
}

// observe folds one live entity into its health record.
func (t *Tracker) observe(e snapshot.Entity) {
	rec, ok := t.records[e.ID]
	if !ok {
		t.records[e.ID] = &healthRecord{
			name:       e.Name,
			lastHealth: e.Health,
			x:          e.X,
			z:          e.Z,
			level:      e.Level,
		}
		return
	}

	if rec.lastHealth > 0 && e.Health == 0 {
		// Death transition. Position and level become unreadable once
		// the entity leaves the registry, so capture them now.
		rec.name = e.Name
		rec.x = e.X
		rec.z = e.Z
		rec.level = e.Level
		t.logger.Info("death observed",
			zap.String("id", e.ID),
			zap.String("name", e.Name),
			zap.Int("x", e.X),
			zap.Int("z", e.Z))
	}

	rec.lastHealth = e.Health
	rec.ticksUnseen = 0
}

// confirmDespawns walks records absent from this tick's snapshot.
// Zero cached health means despawn-confirmed: create a timer if the
// entity is eligible, then drop the record either way. Nonzero cached
// health is an ordinary disappearance (out of range); the record is
// kept until the idle TTL evicts it.
func (t *Tracker) confirmDespawns(seen map[string]struct{}, now time.Time) {
	for id, rec := range t.records {
		if _, ok := seen[id]; ok {
			continue
		}

		if rec.lastHealth == 0 {
			if t.shouldTrack(rec.name, rec.level) {
				t.createTimer(id, rec, now)
			}
			delete(t.records, id)
			continue
		}

		rec.ticksUnseen++
		if rec.ticksUnseen >= t.cfg.RecordTTLTicks {
			delete(t.records, id)
		}
	}
}

// createTimer registers the projected respawn. Overwrite on duplicate:
// re-tracking an already-tracked id replaces the entry rather than
// erroring.
func (t *Tracker) createTimer(id string, rec *healthRecord, now time.Time) {
	dur := t.cfg.DefaultRespawn
	if override, ok := t.cfg.RespawnOverride[rec.name]; ok {
		dur = override
	}

	t.timers[id] = &Timer{
		ID:             id,
		Name:           rec.name,
		X:              rec.x,
		Z:              rec.z,
		Level:          rec.level,
		SpawnAt:        now.Add(dur),
		RespawnSeconds: int(dur / time.Second),
	}

	t.logger.Info("respawn timer created",
		zap.String("id", id),
		zap.String("name", rec.name),
		zap.Duration("respawn", dur))
}

// Timers returns copies of the active timers sorted soonest-first.
// Ordering is a display contract for the presentation layer.
func (t *Tracker) Timers() []Timer {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Timer, 0, len(t.timers))
	for _, tm := range t.timers {
		out = append(out, *tm)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SpawnAt.Before(out[j].SpawnAt)
	})
	return out
}

// Remove deletes one timer by id. Removing an absent id is a no-op.
func (t *Tracker) Remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.timers[id]; ok {
		delete(t.timers, id)
		t.logger.Info("timer removed", zap.String("id", id))
	}
}

// Clear drops every active timer.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.timers) > 0 {
		t.logger.Info("timers cleared", zap.Int("count", len(t.timers)))
	}
	t.timers = make(map[string]*Timer)
}

// Stop clears all in-memory state. There is no in-flight work to
// cancel; everything runs inside Tick.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.records = make(map[string]*healthRecord)
	t.timers = make(map[string]*Timer)
	t.health = status.HealthUnknown
	t.logger.Info("tracker stopped")
}

// Status reports the tracker's current health snapshot.
func (t *Tracker) Status() status.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return status.Snapshot{
		Health:        t.health,
		Ticks:         t.ticks,
		EntitiesSeen:  t.seen,
		RecordsActive: len(t.records),
		TimersActive:  len(t.timers),
		LastTickAt:    t.lastAt,
		LastError:     t.lastErr,
	}
}

func lowercaseAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out
}
