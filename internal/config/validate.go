// internal/config/validate.go
package config

import "fmt"

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
// Zero values mean "use the default" and are filled in by Normalize.
func Validate(cfg *Config) error {
	sw := cfg.Spawnwatch

	if sw.Source.Endpoint == "" {
		return fmt.Errorf("source: endpoint is required")
	}
	if sw.Source.TimeoutMs < 0 {
		return fmt.Errorf("source: timeout_ms must be >= 0")
	}

	if sw.Poll.IntervalMs < 0 {
		return fmt.Errorf("poll: interval_ms must be >= 0")
	}

	if sw.Tracking.DefaultRespawnSec < 0 {
		return fmt.Errorf("tracking: default_respawn_sec must be >= 0")
	}
	if sw.Tracking.MinCombatLevel < 0 {
		return fmt.Errorf("tracking: min_combat_level must be >= 0")
	}
	if sw.Tracking.RecordTTLTicks < 0 {
		return fmt.Errorf("tracking: record_ttl_ticks must be >= 0")
	}
	for name, sec := range sw.Tracking.RespawnOverridesSec {
		if name == "" {
			return fmt.Errorf("tracking: respawn override with empty name")
		}
		if sec <= 0 {
			return fmt.Errorf("tracking: respawn override for %q must be > 0", name)
		}
	}

	if sw.Alerts.ThresholdSec < 0 {
		return fmt.Errorf("alerts: threshold_sec must be >= 0")
	}

	if sw.Server.BroadcastMs < 0 {
		return fmt.Errorf("server: broadcast_ms must be >= 0")
	}

	return nil
}
