package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/AlexGerus/dolf-charts/internal/store"
)

const (
	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Dashboard and API may be served from different origins during
	// development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LiveHandler streams store snapshots to dashboard clients over WebSocket.
// Every store mutation pushes the full current scenario list; clients never
// receive diffs.
type LiveHandler struct {
	store  *store.Store
	logger *logrus.Logger
}

// NewLiveHandler creates a LiveHandler.
func NewLiveHandler(st *store.Store, logger *logrus.Logger) *LiveHandler {
	return &LiveHandler{
		store:  st,
		logger: logger,
	}
}

// Serve upgrades the connection and forwards snapshots until the client
// disconnects. The initial snapshot is delivered immediately on subscribe.
func (h *LiveHandler) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	snapshots, cancel := h.store.Subscribe()
	defer cancel()

	// Reader goroutine: the client sends nothing we care about, but reads
	// must be drained to notice a close frame.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case snapshot := <-snapshots:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(gin.H{"scenarios": snapshot}); err != nil {
				h.logger.WithError(err).Debug("Live feed write failed")
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
