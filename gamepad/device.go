package gamepad

import "fmt"

// Gamepad is a handle to one opened controller. It owns the backend reference
// exclusively; opening the same device ID through two handles at once is
// undefined behavior in the backend and must be avoided by the caller.
//
// The handle stays valid across physical disconnection: reads keep working
// against the backend's last buffered state, but Connected reports false and
// callers are expected to re-check it before each interaction they care
// about. After Close every operation fails with ErrClosed.
//
// All handle operations take the library lock. A quit event observed by the
// polling tick tears the library down from the tick goroutine, closing every
// open handle; the lock is what keeps a read that races that teardown from
// touching a freed backend reference. Reads issued after the teardown fail
// with ErrClosed.
type Gamepad struct {
	lib *Library
	dev Device // guarded by lib.mu; nil once closed
}

// Open acquires a handle for the controller with the given device ID.
func (l *Library) Open(id DeviceID) (*Gamepad, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.initialized {
		return nil, ErrNotInitialized
	}
	dev := l.drv.Open(id)
	if dev == nil {
		return nil, fmt.Errorf("%w: device id %d: %s", ErrDeviceUnavailable, id, l.drv.LastError())
	}
	g := &Gamepad{lib: l, dev: dev}
	l.handles[g] = struct{}{}
	return g, nil
}

// OpenByPlayerIndex acquires a handle for the index-th currently attached
// controller (0-based). The ordinal is transient; the handle resolves to the
// stable device-ID identity once opened.
func (l *Library) OpenByPlayerIndex(index int) (*Gamepad, error) {
	l.mu.Lock()
	if !l.initialized {
		l.mu.Unlock()
		return nil, ErrNotInitialized
	}
	ids := l.drv.Devices()
	l.mu.Unlock()
	if index < 0 || index >= len(ids) {
		return nil, fmt.Errorf("%w: player index %d", ErrDeviceUnavailable, index)
	}
	return l.Open(ids[index])
}

// Close releases the backend reference. Calling Close twice is a contract
// violation; the second call reports ErrClosed instead of corrupting backend
// state.
func (g *Gamepad) Close() error {
	g.lib.mu.Lock()
	defer g.lib.mu.Unlock()
	if g.dev == nil {
		return ErrClosed
	}
	delete(g.lib.handles, g)
	g.dev.Close()
	g.dev = nil
	return nil
}

// Connected is a point-in-time liveness check. A controller can disconnect
// between two calls at any time; consumers must re-check before each
// interaction they care about.
func (g *Gamepad) Connected() bool {
	g.lib.mu.Lock()
	defer g.lib.mu.Unlock()
	return g.dev != nil && g.dev.Connected()
}

// device returns the backend reference. Callers must hold lib.mu and keep it
// held for as long as they use the returned Device.
func (g *Gamepad) device() (Device, error) {
	if g.dev == nil {
		return nil, ErrClosed
	}
	return g.dev, nil
}

// DeviceID returns the stable device ID, or ok=false when the backend no
// longer reports one or the handle is closed.
func (g *Gamepad) DeviceID() (DeviceID, bool) {
	g.lib.mu.Lock()
	defer g.lib.mu.Unlock()
	if g.dev == nil {
		return 0, false
	}
	id := g.dev.ID()
	return id, id != 0
}

// PlayerIndex returns the transient ordinal among attached controllers, or
// ok=false when the backend has not assigned one or the handle is closed.
func (g *Gamepad) PlayerIndex() (int, bool) {
	g.lib.mu.Lock()
	defer g.lib.mu.Unlock()
	if g.dev == nil {
		return 0, false
	}
	idx := g.dev.PlayerIndex()
	if idx < 0 {
		return 0, false
	}
	return idx, true
}

// State reads every button and axis channel in one pass and returns the
// snapshot. The read does not mutate any device-side state.
func (g *Gamepad) State() (GamepadState, error) {
	g.lib.mu.Lock()
	defer g.lib.mu.Unlock()
	dev, err := g.device()
	if err != nil {
		return GamepadState{}, err
	}
	return GamepadState{
		ButtonA:     dev.Button(ButtonA),
		ButtonB:     dev.Button(ButtonB),
		ButtonX:     dev.Button(ButtonX),
		ButtonY:     dev.Button(ButtonY),
		ButtonBack:  dev.Button(ButtonBack),
		ButtonGuide: dev.Button(ButtonGuide),
		ButtonStart: dev.Button(ButtonStart),

		LeftStickButton:  dev.Button(ButtonLeftStick),
		RightStickButton: dev.Button(ButtonRightStick),

		DpadUp:    dev.Button(ButtonDpadUp),
		DpadDown:  dev.Button(ButtonDpadDown),
		DpadLeft:  dev.Button(ButtonDpadLeft),
		DpadRight: dev.Button(ButtonDpadRight),

		LeftShoulder:  dev.Button(ButtonLeftShoulder),
		RightShoulder: dev.Button(ButtonRightShoulder),

		LeftX:  dev.Axis(AxisLeftX),
		LeftY:  dev.Axis(AxisLeftY),
		RightX: dev.Axis(AxisRightX),
		RightY: dev.Axis(AxisRightY),

		LeftTrigger:  dev.Axis(AxisLeftTrigger),
		RightTrigger: dev.Axis(AxisRightTrigger),
	}, nil
}

// Info returns the full metadata snapshot of the opened controller. It is
// re-queried from the backend on every call.
func (g *Gamepad) Info() (Info, error) {
	g.lib.mu.Lock()
	defer g.lib.mu.Unlock()
	dev, err := g.device()
	if err != nil {
		return Info{}, err
	}
	return dev.Info(), nil
}

// ConnectionState classifies how the controller is attached. An undefined
// raw code from the backend yields a ProtocolViolationError.
func (g *Gamepad) ConnectionState() (ConnectionState, error) {
	g.lib.mu.Lock()
	defer g.lib.mu.Unlock()
	dev, err := g.device()
	if err != nil {
		return ConnectionInvalid, err
	}
	return ConnectionStateFromCode(dev.ConnectionStateCode())
}

// PowerState classifies the controller's battery situation. Power telemetry
// is best-effort; undetermined readings come back as PowerError or
// PowerUnknown values, never as a fault beyond the closed-handle check.
func (g *Gamepad) PowerState() (PowerState, error) {
	g.lib.mu.Lock()
	defer g.lib.mu.Unlock()
	dev, err := g.device()
	if err != nil {
		return PowerError, err
	}
	code, _ := dev.PowerStateCode()
	return PowerStateFromCode(code), nil
}

// BatteryPercent returns the battery charge in [0, 100], or ok=false when the
// backend cannot determine it.
func (g *Gamepad) BatteryPercent() (percent int, ok bool) {
	g.lib.mu.Lock()
	defer g.lib.mu.Unlock()
	if g.dev == nil {
		return 0, false
	}
	_, pct := g.dev.PowerStateCode()
	if pct < 0 {
		return 0, false
	}
	if pct > 100 {
		pct = 100
	}
	return pct, true
}

// Capabilities reports best-effort haptics/LED support flags.
func (g *Gamepad) Capabilities() (Capabilities, error) {
	g.lib.mu.Lock()
	defer g.lib.mu.Unlock()
	dev, err := g.device()
	if err != nil {
		return Capabilities{}, err
	}
	return dev.Capabilities(), nil
}
