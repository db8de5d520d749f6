package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/padkit/sdlpad/internal/hub"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // local-use service, all origins accepted
	},
}

func handleWebSocket(h *hub.Hub, m *hub.Monitor, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", "error", err)
			return
		}

		client := hub.NewClient(h, conn)
		h.Register(client)

		// New clients get the current state immediately.
		m.SendSnapshot(client)

		go client.WritePump()
		go client.ReadPump(m)
	}
}
