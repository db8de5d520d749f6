package hub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padkit/sdlpad/gamepad"
)

// stubDriver is the minimal gamepad.Driver needed to drive a Monitor.
type stubDriver struct {
	devices map[gamepad.DeviceID]*stubDevice
	order   []gamepad.DeviceID
}

func newStubDriver(ids ...gamepad.DeviceID) *stubDriver {
	d := &stubDriver{devices: make(map[gamepad.DeviceID]*stubDevice)}
	for _, id := range ids {
		d.devices[id] = &stubDevice{id: id, connected: true}
		d.order = append(d.order, id)
	}
	return d
}

func (d *stubDriver) SetHints() {}
func (d *stubDriver) Init() bool { return true }
func (d *stubDriver) Quit() {}
func (d *stubDriver) PumpEvents() bool { return false }
func (d *stubDriver) Update() {}
func (d *stubDriver) LastError() string { return "" }
func (d *stubDriver) ClearError() {}

func (d *stubDriver) Devices() []gamepad.DeviceID {
	return append([]gamepad.DeviceID(nil), d.order...)
}

func (d *stubDriver) DeviceInfo(id gamepad.DeviceID) (gamepad.DeviceInfo, bool) {
	if _, ok := d.devices[id]; !ok {
		return gamepad.DeviceInfo{}, false
	}
	return gamepad.DeviceInfo{ID: id, Name: "Stub Pad"}, true
}

func (d *stubDriver) Open(id gamepad.DeviceID) gamepad.Device {
	dev, ok := d.devices[id]
	if !ok {
		return nil
	}
	return dev
}

type stubDevice struct {
	id        gamepad.DeviceID
	connected bool
	buttonA   bool
	leftX     int16
}

func (s *stubDevice) Close() {}
func (s *stubDevice) Connected() bool { return s.connected }
func (s *stubDevice) ID() gamepad.DeviceID { return s.id }
func (s *stubDevice) PlayerIndex() int { return -1 }

func (s *stubDevice) Button(b gamepad.Button) bool {
	return b == gamepad.ButtonA && s.buttonA
}

func (s *stubDevice) Axis(a gamepad.Axis) int16 {
	if a == gamepad.AxisLeftX {
		return s.leftX
	}
	return 0
}

func (s *stubDevice) Info() gamepad.Info { return gamepad.Info{Name: "Stub Pad"} }
func (s *stubDevice) ConnectionStateCode() int { return 1 }
func (s *stubDevice) PowerStateCode() (int, int) { return 0, -1 }
func (s *stubDevice) Capabilities() gamepad.Capabilities { return gamepad.Capabilities{} }

func (s *stubDevice) Rumble(low, high uint16, durationMS uint32) bool { return true }
func (s *stubDevice) RumbleTriggers(left, right uint16, durationMS uint32) bool { return true }

func newTestMonitor(t *testing.T, drv *stubDriver) *Monitor {
	t.Helper()
	lib := gamepad.New(drv, nil)
	require.NoError(t, lib.Init(time.Hour)) // ticks are driven manually
	t.Cleanup(lib.Dispose)
	return NewMonitor(lib, NewHub(nil), nil, time.Millisecond)
}

func TestMonitorAdoptsFirstDevice(t *testing.T) {
	drv := newStubDriver(3, 7)
	m := newTestMonitor(t, drv)

	m.tick()
	snap := m.Snapshot()
	assert.True(t, snap.Connected)
	assert.Equal(t, uint32(3), snap.DeviceID)
	assert.Equal(t, "Stub Pad", snap.Name)
}

func TestMonitorNoDevices(t *testing.T) {
	m := newTestMonitor(t, newStubDriver())

	m.tick()
	assert.False(t, m.Snapshot().Connected)
}

func TestMonitorTracksStateChanges(t *testing.T) {
	drv := newStubDriver(3)
	m := newTestMonitor(t, drv)
	m.tick()

	drv.devices[3].buttonA = true
	drv.devices[3].leftX = 9000
	m.tick()

	snap := m.Snapshot()
	assert.True(t, snap.State.ButtonA)
	assert.Equal(t, int16(9000), snap.State.LeftX)
	assert.InDelta(t, 0.27, snap.Normalized.LeftX, 0.01)
}

func TestMonitorHandlesDisconnect(t *testing.T) {
	drv := newStubDriver(3)
	m := newTestMonitor(t, drv)
	m.tick()
	require.True(t, m.Snapshot().Connected)

	drv.devices[3].connected = false
	drv.order = nil
	delete(drv.devices, 3)
	m.tick()
	assert.False(t, m.Snapshot().Connected)
}

func TestMonitorPromotesNextDevice(t *testing.T) {
	drv := newStubDriver(3, 7)
	m := newTestMonitor(t, drv)
	m.tick()

	drv.devices[3].connected = false
	drv.order = []gamepad.DeviceID{7}
	delete(drv.devices, 3)
	m.tick() // observes the disconnect and promotes the remaining controller

	snap := m.Snapshot()
	assert.True(t, snap.Connected)
	assert.Equal(t, uint32(7), snap.DeviceID)
}

func TestMonitorSetActiveDevice(t *testing.T) {
	drv := newStubDriver(3, 7)
	m := newTestMonitor(t, drv)
	m.tick()

	assert.True(t, m.SetActiveDevice(7))
	assert.Equal(t, uint32(7), m.Snapshot().DeviceID)

	assert.False(t, m.SetActiveDevice(99), "unknown device refused")
	assert.Equal(t, uint32(7), m.Snapshot().DeviceID, "previous device stays active")
}
