// internal/snapshot/types.go
package snapshot

// Entity is the flat per-tick view of one live non-player entity.
// It is rebuilt from the source every tick and never persisted.
type Entity struct {
	ID        string
	Name      string
	Health    int
	MaxHealth int
	X         int
	Z         int
	Level     int
}

// Alive reports whether the entity still has health remaining.
func (e Entity) Alive() bool {
	return e.Health > 0
}

// Source reads the live entity registry exposed by the game client.
// A transiently unavailable source returns an error; callers treat
// that as an empty snapshot for the tick, never as fatal.
type Source interface {
	Entities() ([]Entity, error)
}
