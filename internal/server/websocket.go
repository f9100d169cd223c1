// internal/server/websocket.go
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/highlite-tools/spawnwatch/internal/tracker"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RemoveAction dismisses one timer from a connected overlay client.
type RemoveAction struct {
	Action string `json:"action"`
	ID     string `json:"id"`
}

// HandleWebsocket upgrades the connection, registers it with the
// broadcaster, and services dismiss/clear actions until the client
// goes away.
func HandleWebsocket(b *Broadcaster, tr *tracker.Tracker, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", zap.Error(err))
			return
		}

		b.Register(conn)

		for {
			msgType, msg, err := conn.ReadMessage()
			if err != nil {
				b.Unregister(conn)
				return
			}
			if msgType != websocket.TextMessage {
				continue
			}

			var base map[string]any
			if err := json.Unmarshal(msg, &base); err != nil {
				logger.Debug("websocket message parse failed", zap.Error(err))
				continue
			}

			action, ok := base["action"].(string)
			if !ok {
				continue
			}

			switch action {
			case "remove":
				var remove RemoveAction
				if err := json.Unmarshal(msg, &remove); err != nil || remove.ID == "" {
					continue
				}
				tr.Remove(remove.ID)
				b.BroadcastTimers()

			case "clear":
				tr.Clear()
				b.BroadcastTimers()
			}
		}
	}
}
