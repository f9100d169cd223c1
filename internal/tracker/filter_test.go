package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestShouldTrack_Precedence(t *testing.T) {
	testCases := []struct {
		name        string
		trackBosses bool
		entity      string
		level       int
		want        bool
	}{
		{"level clears minimum", true, "Hill Giant", 50, true},
		{"level below minimum", true, "Goblin", 5, false},
		{"boss keyword below minimum level", true, "Baby Dragon", 5, true},
		{"boss keyword ignored when disabled", false, "Baby Dragon", 5, false},
		{"blacklist beats level", true, "Giant Rat", 99, false},
		{"blacklist beats boss keyword", true, "Chicken King", 99, false},
		{"matching is case-insensitive", true, "FIRE DRAGON", 5, true},
		{"blacklist is substring match", true, "Undead Chicken of Doom", 99, false},
		{"empty name falls through to level", true, "", 45, true},
		{"empty name below minimum", true, "", 10, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.TrackBosses = tc.trackBosses
			tr, err := New(cfg, &fakeSource{}, nil, zaptest.NewLogger(t))
			require.NoError(t, err)

			assert.Equal(t, tc.want, tr.shouldTrack(tc.entity, tc.level))
		})
	}
}

func TestShouldTrack_KeywordsFoldedOnce(t *testing.T) {
	cfg := testConfig()
	cfg.Blacklist = []string{"ChIcKeN"}
	cfg.BossKeywords = []string{"DRAGON"}
	cfg.MinCombatLevel = 1000
	cfg.RespawnOverride = nil
	cfg.Interval = time.Second

	tr, err := New(cfg, &fakeSource{}, nil, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.False(t, tr.shouldTrack("cave chicken", 1))
	assert.True(t, tr.shouldTrack("fire dragon", 1))
}
