// internal/config/normalize.go
package config

import "strings"

// Defaults applied by Normalize.
const (
	DefaultTimeoutMs      = 1000
	DefaultIntervalMs     = 600
	DefaultRespawnSec     = 120
	DefaultAlertThreshold = 15
	DefaultRecordTTLTicks = 600
	DefaultListen         = ":8077"
	DefaultBroadcastMs    = 1000
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	sw := &cfg.Spawnwatch

	if sw.Source.TimeoutMs == 0 {
		sw.Source.TimeoutMs = DefaultTimeoutMs
	}
	if sw.Poll.IntervalMs == 0 {
		sw.Poll.IntervalMs = DefaultIntervalMs
	}
	if sw.Tracking.DefaultRespawnSec == 0 {
		sw.Tracking.DefaultRespawnSec = DefaultRespawnSec
	}
	if sw.Tracking.RecordTTLTicks == 0 {
		sw.Tracking.RecordTTLTicks = DefaultRecordTTLTicks
	}
	if sw.Alerts.ThresholdSec == 0 {
		sw.Alerts.ThresholdSec = DefaultAlertThreshold
	}
	if sw.Server.Listen == "" {
		sw.Server.Listen = DefaultListen
	}
	if sw.Server.BroadcastMs == 0 {
		sw.Server.BroadcastMs = DefaultBroadcastMs
	}

	// Keyword matching is case-insensitive; fold once here rather
	// than on every tick.
	for i, k := range sw.Tracking.BossKeywords {
		sw.Tracking.BossKeywords[i] = strings.ToLower(strings.TrimSpace(k))
	}
	for i, b := range sw.Tracking.Blacklist {
		sw.Tracking.Blacklist[i] = strings.ToLower(strings.TrimSpace(b))
	}
}
