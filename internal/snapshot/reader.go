// internal/snapshot/reader.go
package snapshot

import (
	"fmt"
	"strconv"
)

// The client's entity registry is not a stable schema: field names
// differ between client builds (position lives under "position",
// "pos" or flat "x"/"z"; health under "hitpoints" or "health").
// Decoding tries each known name in a fixed priority order and falls
// back to zero values rather than rejecting the record.

var (
	idFields     = []string{"id", "entityId", "entity_id"}
	nameFields   = []string{"name", "npcName", "npc_name"}
	levelFields  = []string{"combatLevel", "combat_level", "level"}
	posFields    = []string{"position", "pos", "worldPos"}
	curHPFields  = []string{"currentHitpoints", "currentHealth", "hp"}
	maxHPFields  = []string{"maxHitpoints", "maxHealth", "maxHp"}
	xFields      = []string{"x", "X"}
	zFields      = []string{"z", "Z", "y"}
	healthFields = []string{"hitpoints", "health"}
)

// Decode converts one raw registry record into an Entity.
// The id is the only required field; everything else degrades to a
// zero value when absent or unreadable.
func Decode(raw map[string]any) (Entity, bool) {
	id, ok := stringField(raw, idFields...)
	if !ok {
		return Entity{}, false
	}

	e := Entity{ID: id}
	e.Name, _ = stringField(raw, nameFields...)
	e.Level, _ = intField(raw, levelFields...)

	// Health may be nested ({hitpoints: {current, max}}) or flat.
	if hp, ok := objectField(raw, healthFields...); ok {
		e.Health, _ = intField(hp, "current", "cur")
		e.MaxHealth, _ = intField(hp, "max")
	} else {
		e.Health, _ = intField(raw, curHPFields...)
		e.MaxHealth, _ = intField(raw, maxHPFields...)
	}

	// Position may be nested or flat on the record itself.
	if pos, ok := objectField(raw, posFields...); ok {
		e.X, _ = intField(pos, xFields...)
		e.Z, _ = intField(pos, zFields...)
	} else {
		e.X, _ = intField(raw, xFields...)
		e.Z, _ = intField(raw, zFields...)
	}

	return e, true
}

// DecodeAll converts a batch of raw records, skipping the unusable ones.
func DecodeAll(raws []map[string]any) []Entity {
	out := make([]Entity, 0, len(raws))
	for _, raw := range raws {
		if e, ok := Decode(raw); ok {
			out = append(out, e)
		}
	}
	return out
}

// ---- tolerant field accessors ----

func stringField(m map[string]any, names ...string) (string, bool) {
	for _, n := range names {
		v, ok := m[n]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			if s != "" {
				return s, true
			}
		case float64:
			return strconv.FormatInt(int64(s), 10), true
		case int:
			return strconv.Itoa(s), true
		}
	}
	return "", false
}

func intField(m map[string]any, names ...string) (int, bool) {
	for _, n := range names {
		v, ok := m[n]
		if !ok || v == nil {
			continue
		}
		switch x := v.(type) {
		case float64:
			return int(x), true
		case int:
			return x, true
		case string:
			if i, err := strconv.Atoi(x); err == nil {
				return i, true
			}
		}
	}
	return 0, false
}

func objectField(m map[string]any, names ...string) (map[string]any, bool) {
	for _, n := range names {
		if v, ok := m[n].(map[string]any); ok {
			return v, true
		}
	}
	return nil, false
}

// String implements fmt.Stringer for log output.
func (e Entity) String() string {
	return fmt.Sprintf("%s(%s %d/%d @ %d,%d lvl %d)", e.Name, e.ID, e.Health, e.MaxHealth, e.X, e.Z, e.Level)
}
