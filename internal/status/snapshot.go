// internal/status/snapshot.go
package status

import "time"

// Snapshot represents exactly what the presentation layer is allowed
// to see of the tracker's health. It contains no logic and no memory
// of the past beyond current state.
type Snapshot struct {
	Health        string    `json:"health"`
	Ticks         uint64    `json:"ticks"`
	EntitiesSeen  int       `json:"entitiesSeen"`
	RecordsActive int       `json:"recordsActive"`
	TimersActive  int       `json:"timersActive"`
	LastTickAt    time.Time `json:"lastTickAt"`
	LastError     string    `json:"lastError,omitempty"`
}
