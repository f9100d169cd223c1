// internal/server/broadcaster.go
package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/highlite-tools/spawnwatch/internal/tracker"
)

// Broadcaster pushes the active timer list to subscribed websocket
// clients on a fixed cadence and on demand after manual mutations.
type Broadcaster struct {
	tracker  *tracker.Tracker
	logger   *zap.Logger
	interval time.Duration

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex // per-conn write locks
}

func NewBroadcaster(tr *tracker.Tracker, interval time.Duration, logger *zap.Logger) *Broadcaster {
	return &Broadcaster{
		tracker:  tr,
		logger:   logger,
		interval: interval,
		clients:  make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Register adds a client and immediately sends it the current view.
func (b *Broadcaster) Register(conn *websocket.Conn) {
	b.mu.Lock()
	b.clients[conn] = &sync.Mutex{}
	b.mu.Unlock()

	b.sendTo(conn)
}

// Unregister drops a client. Safe to call for an unknown conn.
func (b *Broadcaster) Unregister(conn *websocket.Conn) {
	b.mu.Lock()
	if _, ok := b.clients[conn]; ok {
		delete(b.clients, conn)
		conn.Close()
	}
	b.mu.Unlock()
}

// Run pushes the timer view on the broadcast interval until the
// context is done.
func (b *Broadcaster) Run(ctx context.Context) {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.closeAll()
			return
		case <-ticker.C:
			b.BroadcastTimers()
		}
	}
}

// BroadcastTimers sends the current timer view to every client.
// Clients that fail a write are dropped.
func (b *Broadcaster) BroadcastTimers() {
	data, err := b.payload()
	if err != nil {
		b.logger.Warn("timer payload marshal failed", zap.Error(err))
		return
	}

	b.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(b.clients))
	for conn := range b.clients {
		conns = append(conns, conn)
	}
	b.mu.RUnlock()

	for _, conn := range conns {
		if err := b.write(conn, data); err != nil {
			b.logger.Debug("websocket write failed, dropping client", zap.Error(err))
			b.Unregister(conn)
		}
	}
}

func (b *Broadcaster) sendTo(conn *websocket.Conn) {
	data, err := b.payload()
	if err != nil {
		return
	}
	if err := b.write(conn, data); err != nil {
		b.Unregister(conn)
	}
}

func (b *Broadcaster) payload() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":   "timers",
		"timers": timerViews(b.tracker),
	})
}

func (b *Broadcaster) write(conn *websocket.Conn, data []byte) error {
	b.mu.RLock()
	mu, ok := b.clients[conn]
	b.mu.RUnlock()
	if !ok {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()
	return conn.WriteMessage(websocket.TextMessage, data)
}

func (b *Broadcaster) closeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for conn := range b.clients {
		conn.Close()
		delete(b.clients, conn)
	}
}
