package hub

import (
	"encoding/json"
	"log/slog"

	"github.com/gorilla/websocket"

	"github.com/padkit/sdlpad/gamepad"
)

// DeviceSwitcher lets a client change which controller the monitor follows.
type DeviceSwitcher interface {
	SetActiveDevice(gamepad.DeviceID) bool
}

// Client represents a connected WebSocket client.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewClient creates a new Client attached to the hub.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
}

// WritePump sends messages from the send channel to the WebSocket connection.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// ReadPump reads client commands from the WebSocket until the connection
// drops. The only command is device selection.
func (c *Client) ReadPump(switcher DeviceSwitcher) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var clientMsg ClientMessage
		if err := json.Unmarshal(message, &clientMsg); err != nil {
			c.hub.log.Warn("malformed client message", "error", err)
			continue
		}

		switch clientMsg.Type {
		case "select_device":
			id := gamepad.DeviceID(clientMsg.DeviceID)
			if switcher.SetActiveDevice(id) {
				c.hub.log.Info("client switched device", "id", id)
			} else {
				c.hub.log.Warn("device switch refused", "id", id)
			}
		default:
			c.hub.log.Debug("ignoring client message", slog.String("type", clientMsg.Type))
		}
	}
}
