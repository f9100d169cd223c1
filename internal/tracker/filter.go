// internal/tracker/filter.go
package tracker

import "strings"

// shouldTrack decides whether a despawned NPC gets a respawn timer.
// Precedence: blacklist rejection beats boss-keyword acceptance beats
// combat-level acceptance. Matching is substring, case-insensitive.
func (t *Tracker) shouldTrack(name string, level int) bool {
	lower := strings.ToLower(name)

	for _, b := range t.cfg.Blacklist {
		if strings.Contains(lower, b) {
			return false
		}
	}

	if t.cfg.TrackBosses {
		for _, k := range t.cfg.BossKeywords {
			if strings.Contains(lower, k) {
				return true
			}
		}
	}

	return level >= t.cfg.MinCombatLevel
}
