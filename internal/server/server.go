// internal/server/server.go
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hako/durafmt"
	"go.uber.org/zap"

	"github.com/highlite-tools/spawnwatch/internal/tracker"
)

// SetupRouter builds the HTTP API for the timer presentation layer.
func SetupRouter(tr *tracker.Tracker, b *Broadcaster, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", healthzHandler)
	r.GET("/status", statusHandler(tr))
	r.GET("/timers", listTimersHandler(tr))
	r.DELETE("/timers/:id", removeTimerHandler(tr, b, logger))
	r.DELETE("/timers", clearTimersHandler(tr, b))

	r.GET("/ws", HandleWebsocket(b, tr, logger))

	return r
}

// timerView is the wire shape of one active timer.
type timerView struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	X                int       `json:"x"`
	Z                int       `json:"z"`
	Level            int       `json:"level"`
	SpawnAt          time.Time `json:"spawnAt"`
	RespawnSeconds   int       `json:"respawnSeconds"`
	RemainingSeconds int       `json:"remainingSeconds"`
	Remaining        string    `json:"remaining"`
}

// timerViews renders the active timers soonest-first, with a
// human-readable countdown string.
func timerViews(tr *tracker.Tracker) []timerView {
	now := time.Now()
	timers := tr.Timers()

	out := make([]timerView, 0, len(timers))
	for _, t := range timers {
		remaining := t.Remaining(now)
		out = append(out, timerView{
			ID:               t.ID,
			Name:             t.Name,
			X:                t.X,
			Z:                t.Z,
			Level:            t.Level,
			SpawnAt:          t.SpawnAt,
			RespawnSeconds:   t.RespawnSeconds,
			RemainingSeconds: remaining,
			Remaining:        durafmt.Parse(time.Duration(remaining) * time.Second).LimitFirstN(2).String(),
		})
	}
	return out
}

func healthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func statusHandler(tr *tracker.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, tr.Status())
	}
}

func listTimersHandler(tr *tracker.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"timers": timerViews(tr)})
	}
}

// removeTimerHandler dismisses one timer. Removal is idempotent:
// deleting an unknown id still returns 204.
func removeTimerHandler(tr *tracker.Tracker, b *Broadcaster, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		tr.Remove(id)
		logger.Debug("timer dismiss requested", zap.String("id", id))
		b.BroadcastTimers()
		c.Status(http.StatusNoContent)
	}
}

func clearTimersHandler(tr *tracker.Tracker, b *Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		tr.Clear()
		b.BroadcastTimers()
		c.Status(http.StatusNoContent)
	}
}
