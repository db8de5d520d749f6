package hub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/padkit/sdlpad/gamepad"
)

// fullSyncInterval bounds how long a client can go without a full snapshot
// even when nothing changes.
const fullSyncInterval = 5 * time.Second

// Monitor follows one controller through the gamepad library and broadcasts
// its state. When the active controller disconnects, the next available one
// is promoted automatically; clients can also switch explicitly.
type Monitor struct {
	lib      *gamepad.Library
	hub      *Hub
	log      *slog.Logger
	interval time.Duration

	mu   sync.Mutex
	pad  *gamepad.Gamepad
	id   gamepad.DeviceID
	name string
	last gamepad.GamepadState
	seq  int64
}

func NewMonitor(lib *gamepad.Library, h *Hub, logger *slog.Logger, interval time.Duration) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = gamepad.DefaultPollInterval
	}
	return &Monitor{lib: lib, hub: h, log: logger, interval: interval}
}

// Run polls until the context is cancelled. Should be run in a goroutine.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	fullSync := time.NewTicker(fullSyncInterval)
	defer fullSync.Stop()

	for {
		select {
		case <-ctx.Done():
			m.mu.Lock()
			m.closeActiveLocked()
			m.mu.Unlock()
			return
		case <-ticker.C:
			m.tick()
		case <-fullSync.C:
			m.mu.Lock()
			snap := m.snapshotLocked()
			m.broadcastLocked("state", "", snap)
			m.mu.Unlock()
		}
	}
}

// SetActiveDevice switches the monitor to the given controller. Reports
// false when the device cannot be opened; the previous controller stays
// active in that case.
func (m *Monitor) SetActiveDevice(id gamepad.DeviceID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	pad, err := m.lib.Open(id)
	if err != nil {
		m.log.Warn("cannot switch device", "id", id, "error", err)
		return false
	}
	m.closeActiveLocked()
	m.adoptLocked(pad)
	return true
}

func (m *Monitor) tick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pad != nil && !m.pad.Connected() {
		m.log.Info("controller disconnected", "id", m.id, "name", m.name)
		m.closeActiveLocked()
		m.broadcastLocked("event", "disconnected", &Snapshot{})
	}

	if m.pad == nil {
		if !m.openFirstLocked() {
			return
		}
		m.broadcastLocked("event", "connected", m.snapshotLocked())
		return
	}

	state, err := m.pad.State()
	if err != nil {
		return
	}
	if gamepad.StateChanged(m.last, state) {
		m.last = state
		m.broadcastLocked("state", "", m.snapshotLocked())
	}
}

func (m *Monitor) openFirstLocked() bool {
	ids, err := m.lib.Devices()
	if err != nil || len(ids) == 0 {
		return false
	}
	pad, err := m.lib.Open(ids[0])
	if err != nil {
		return false
	}
	m.adoptLocked(pad)
	m.log.Info("controller active", "id", m.id, "name", m.name)
	return true
}

func (m *Monitor) adoptLocked(pad *gamepad.Gamepad) {
	m.pad = pad
	m.last = gamepad.GamepadState{}
	m.id, _ = pad.DeviceID()
	m.name = ""
	if info, err := pad.Info(); err == nil {
		m.name = info.Name
	}
}

func (m *Monitor) closeActiveLocked() {
	if m.pad == nil {
		return
	}
	if err := m.pad.Close(); err != nil {
		m.log.Warn("closing controller handle", "error", err)
	}
	m.pad = nil
	m.id = 0
	m.name = ""
	m.last = gamepad.GamepadState{}
}

func (m *Monitor) snapshotLocked() *Snapshot {
	if m.pad == nil {
		return &Snapshot{}
	}
	return &Snapshot{
		Connected:  true,
		DeviceID:   uint32(m.id),
		Name:       m.name,
		State:      m.last,
		Normalized: m.last.Normalized(),
	}
}

// Snapshot returns the current state for a newly connected client.
func (m *Monitor) Snapshot() *Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Monitor) broadcastLocked(kind, event string, snap *Snapshot) {
	m.seq++
	var msg *WSMessage
	if kind == "event" {
		msg = NewEventMessage(m.seq, event, snap)
	} else {
		msg = NewStateMessage(m.seq, snap)
	}
	data, err := json.Marshal(msg)
	if err != nil {
		m.log.Error("encoding broadcast message", "error", err)
		return
	}
	m.hub.Broadcast(data)
}

// SendSnapshot delivers the current full state directly to one client.
func (m *Monitor) SendSnapshot(c *Client) {
	m.mu.Lock()
	m.seq++
	msg := NewStateMessage(m.seq, m.snapshotLocked())
	m.mu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}
