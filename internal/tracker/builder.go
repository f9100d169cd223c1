// internal/tracker/builder.go
package tracker

import (
	"time"

	"go.uber.org/zap"

	"github.com/highlite-tools/spawnwatch/internal/config"
	"github.com/highlite-tools/spawnwatch/internal/notify"
	"github.com/highlite-tools/spawnwatch/internal/snapshot/httpsource"
)

// Build constructs a Tracker wired to the configured entity source
// and notification sinks. The source makes no connection up front;
// an endpoint that is down at startup comes up on a later tick.
func Build(cfg *config.Config, logger *zap.Logger) (*Tracker, error) {
	sw := cfg.Spawnwatch

	source, err := httpsource.New(httpsource.Config{
		Endpoint: sw.Source.Endpoint,
		Timeout:  time.Duration(sw.Source.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}

	sinks := notify.Multi{notify.NewLogNotifier(logger.Named("notify"))}
	if sw.Alerts.Desktop {
		sinks = append(sinks, notify.NewDesktopNotifier())
	}

	overrides := make(map[string]time.Duration, len(sw.Tracking.RespawnOverridesSec))
	for name, sec := range sw.Tracking.RespawnOverridesSec {
		overrides[name] = time.Duration(sec) * time.Second
	}

	return New(
		Config{
			Interval:        time.Duration(sw.Poll.IntervalMs) * time.Millisecond,
			DefaultRespawn:  time.Duration(sw.Tracking.DefaultRespawnSec) * time.Second,
			AlertThreshold:  time.Duration(sw.Alerts.ThresholdSec) * time.Second,
			MinCombatLevel:  sw.Tracking.MinCombatLevel,
			TrackBosses:     sw.Tracking.TrackBosses,
			BossKeywords:    sw.Tracking.BossKeywords,
			Blacklist:       sw.Tracking.Blacklist,
			RespawnOverride: overrides,
			RecordTTLTicks:  sw.Tracking.RecordTTLTicks,
		},
		source,
		sinks,
		logger,
	)
}
