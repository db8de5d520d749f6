package hub

import (
	"time"

	"github.com/padkit/sdlpad/gamepad"
)

// Snapshot is the wire form of one controller reading: identity, the raw
// snapshot and its normalized view.
type Snapshot struct {
	Connected  bool                 `json:"connected"`
	DeviceID   uint32               `json:"deviceId,omitempty"`
	Name       string               `json:"name,omitempty"`
	State      gamepad.GamepadState `json:"state"`
	Normalized gamepad.Normalized   `json:"normalized"`
}

// WSMessage is a WebSocket message sent from server to client.
type WSMessage struct {
	Type      string    `json:"type"` // "state" or "event"
	Seq       int64     `json:"seq"`
	Timestamp int64     `json:"timestamp"` // Unix milliseconds
	Event     string    `json:"event,omitempty"`
	Data      *Snapshot `json:"data,omitempty"`
}

// NewStateMessage creates a "state" message carrying a full snapshot.
func NewStateMessage(seq int64, snap *Snapshot) *WSMessage {
	return &WSMessage{
		Type:      "state",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Data:      snap,
	}
}

// NewEventMessage creates an "event" message (connect/disconnect).
func NewEventMessage(seq int64, event string, snap *Snapshot) *WSMessage {
	return &WSMessage{
		Type:      "event",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Event:     event,
		Data:      snap,
	}
}

// ClientMessage is a message sent from the client to the server.
type ClientMessage struct {
	Type     string `json:"type"`
	DeviceID uint32 `json:"deviceId,omitempty"`
}
