// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Spawnwatch SpawnwatchConfig `yaml:"spawnwatch"`
}

type SpawnwatchConfig struct {
	Source   SourceConfig   `yaml:"source"`
	Poll     PollConfig     `yaml:"poll"`
	Tracking TrackingConfig `yaml:"tracking"`
	Alerts   AlertsConfig   `yaml:"alerts"`
	Server   ServerConfig   `yaml:"server"`
}

// ---- SOURCE ----

type SourceConfig struct {
	Endpoint  string `yaml:"endpoint"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- TRACKING ----

type TrackingConfig struct {
	DefaultRespawnSec   int            `yaml:"default_respawn_sec"`
	MinCombatLevel      int            `yaml:"min_combat_level"`
	TrackBosses         bool           `yaml:"track_bosses"`
	BossKeywords        []string       `yaml:"boss_keywords"`
	Blacklist           []string       `yaml:"blacklist"`
	RespawnOverridesSec map[string]int `yaml:"respawn_overrides_sec"`
	RecordTTLTicks      int            `yaml:"record_ttl_ticks"`
}

// ---- ALERTS ----

type AlertsConfig struct {
	ThresholdSec int  `yaml:"threshold_sec"`
	Desktop      bool `yaml:"desktop"`
}

// ---- SERVER ----

type ServerConfig struct {
	Listen      string `yaml:"listen"`
	BroadcastMs int    `yaml:"broadcast_ms"`
}

// Load reads and parses a YAML config file. It performs no
// validation; callers run Validate then Normalize.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}
	return &cfg, nil
}
