package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recorder struct {
	notes []Notification
}

func (r *recorder) Notify(n Notification) {
	r.notes = append(r.notes, n)
}

func TestMulti_FansOutInOrder(t *testing.T) {
	a := &recorder{}
	b := &recorder{}

	m := Multi{a, b}
	m.Notify(Notification{Title: "t", Body: "b", Severity: SeverityWarning})

	require.Len(t, a.notes, 1)
	require.Len(t, b.notes, 1)
	assert.Equal(t, a.notes[0], b.notes[0])
}

func TestMulti_EmptyIsNoOp(t *testing.T) {
	assert.NotPanics(t, func() {
		Multi{}.Notify(Notification{Title: "t", Body: "b"})
	})
}

func TestLogNotifier_SeverityMapsToLevel(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	n := NewLogNotifier(zap.New(core))

	n.Notify(Notification{Title: "NPC spawned", Body: "Moss King has respawned", Severity: SeverityInfo})
	n.Notify(Notification{Title: "NPC spawning soon", Body: "Moss King spawns in 14s", Severity: SeverityWarning})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, "Moss King has respawned", entries[0].Message)
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "NPC spawning soon", entries[1].ContextMap()["title"])
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
}
