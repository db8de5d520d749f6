// Package sdldriver implements the gamepad.Driver boundary on SDL3 through
// the purego-sdl3 binding. Everything here is a thin pass-through; all policy
// (normalization, state machines, validation) lives in package gamepad.
//
// The binding registers only part of SDL's gamepad API, so per-channel reads,
// haptics and telemetry go through the fully registered joystick API instead:
// each opened controller pairs the gamepad handle (for its binding table and
// model metadata) with the underlying joystick handle, and raw joystick
// samples are translated through SDL's own gamepad bindings.
//
// SDL keeps a single process-wide context, so only one Driver should be
// active at a time. Calls must come from the goroutine that runs the
// library's polling tick or from the owning thread; SDL's own queue and
// device buffers are internally synchronized.
package sdldriver

import (
	"log/slog"
	"math"

	"github.com/jupiterrider/purego-sdl3/sdl"

	"github.com/padkit/sdlpad/gamepad"
)

var buttonCodes = map[gamepad.Button]sdl.GamepadButton{
	gamepad.ButtonA:             sdl.GamepadButtonSouth,
	gamepad.ButtonB:             sdl.GamepadButtonEast,
	gamepad.ButtonX:             sdl.GamepadButtonWest,
	gamepad.ButtonY:             sdl.GamepadButtonNorth,
	gamepad.ButtonBack:          sdl.GamepadButtonBack,
	gamepad.ButtonGuide:         sdl.GamepadButtonGuide,
	gamepad.ButtonStart:         sdl.GamepadButtonStart,
	gamepad.ButtonLeftStick:     sdl.GamepadButtonLeftStick,
	gamepad.ButtonRightStick:    sdl.GamepadButtonRightStick,
	gamepad.ButtonLeftShoulder:  sdl.GamepadButtonLeftShoulder,
	gamepad.ButtonRightShoulder: sdl.GamepadButtonRightShoulder,
	gamepad.ButtonDpadUp:        sdl.GamepadButtonDpadUp,
	gamepad.ButtonDpadDown:      sdl.GamepadButtonDpadDown,
	gamepad.ButtonDpadLeft:      sdl.GamepadButtonDpadLeft,
	gamepad.ButtonDpadRight:     sdl.GamepadButtonDpadRight,
}

var axisCodes = map[gamepad.Axis]sdl.GamepadAxis{
	gamepad.AxisLeftX:        sdl.GamepadAxisLeftX,
	gamepad.AxisLeftY:        sdl.GamepadAxisLeftY,
	gamepad.AxisRightX:       sdl.GamepadAxisRightX,
	gamepad.AxisRightY:       sdl.GamepadAxisRightY,
	gamepad.AxisLeftTrigger:  sdl.GamepadAxisLeftTrigger,
	gamepad.AxisRightTrigger: sdl.GamepadAxisRightTrigger,
}

// Driver is the SDL3 implementation of gamepad.Driver.
type Driver struct {
	log *slog.Logger
}

// New creates the SDL3 driver. A nil logger means slog.Default.
func New(logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{log: logger}
}

// SetHints enables SDL's dedicated joystick thread so input events are not
// missed between polling ticks on platforms that need it.
func (d *Driver) SetHints() {
	sdl.SetHint(sdl.HintJoystickThread, "1")
}

func (d *Driver) Init() bool {
	return sdl.Init(sdl.InitGamepad)
}

func (d *Driver) Quit() {
	sdl.Quit()
}

// PumpEvents drains SDL's event queue and reports whether a quit event was
// seen. Hotplug events are only logged here; enumeration and open/close stay
// with the callers.
func (d *Driver) PumpEvents() bool {
	quit := false
	var event sdl.Event
	for sdl.PollEvent(&event) {
		switch event.Type() {
		case sdl.EventQuit:
			quit = true
		case sdl.EventGamepadAdded:
			d.log.Debug("gamepad attached", "id", event.GDevice().Which)
		case sdl.EventGamepadRemoved:
			d.log.Debug("gamepad detached", "id", event.GDevice().Which)
		}
	}
	return quit
}

func (d *Driver) Update() {
	sdl.UpdateJoysticks()
}

func (d *Driver) Devices() []gamepad.DeviceID {
	ids := sdl.GetGamepads()
	out := make([]gamepad.DeviceID, len(ids))
	for i, id := range ids {
		out[i] = gamepad.DeviceID(id)
	}
	return out
}

// DeviceInfo fills the pre-open metadata subset. GUID stays empty and the
// model type is only known once the device is open; the binding registers no
// pre-open accessor for either.
func (d *Driver) DeviceInfo(id gamepad.DeviceID) (gamepad.DeviceInfo, bool) {
	jid := sdl.JoystickID(id)
	if !isGamepadID(jid) {
		return gamepad.DeviceInfo{}, false
	}
	info := gamepad.DeviceInfo{
		ID:      id,
		Name:    sdl.GetGamepadNameForID(jid),
		Path:    sdl.GetJoystickPathForID(jid),
		Vendor:  sdl.GetJoystickVendorForID(jid),
		Product: sdl.GetJoystickProductForID(jid),
		Version: sdl.GetJoystickProductVersionForID(jid),
	}
	if pad := sdl.GetGamepadFromID(jid); pad != nil {
		info.Type = gamepad.TypeFromCode(int(sdl.GetGamepadType(pad)))
	}
	return info, true
}

// isGamepadID stands in for SDL_IsGamepad: an ID is a gamepad when it appears
// in the gamepad enumeration.
func isGamepadID(jid sdl.JoystickID) bool {
	for _, id := range sdl.GetGamepads() {
		if id == jid {
			return true
		}
	}
	return false
}

func (d *Driver) Open(id gamepad.DeviceID) gamepad.Device {
	jid := sdl.JoystickID(id)
	pad := sdl.OpenGamepad(jid)
	if pad == nil {
		return nil
	}
	js := sdl.OpenJoystick(jid)
	if js == nil {
		sdl.CloseGamepad(pad)
		return nil
	}
	dev := &device{
		pad:         pad,
		js:          js,
		buttonBinds: make(map[sdl.GamepadButton]*sdl.GamepadBinding),
		axisBinds:   make(map[sdl.GamepadAxis][]*sdl.GamepadBinding),
	}
	for _, b := range sdl.GetGamepadBindings(pad) {
		switch b.OutputType {
		case sdl.GamepadBindTypeButton:
			dev.buttonBinds[b.OutputButton()] = b
		case sdl.GamepadBindTypeAxis:
			out := b.OutputAxis()
			dev.axisBinds[out.Axis] = append(dev.axisBinds[out.Axis], b)
		}
	}
	return dev
}

func (d *Driver) LastError() string {
	return sdl.GetError()
}

func (d *Driver) ClearError() {
	sdl.ClearError()
}

// device holds both SDL handles for one controller. The gamepad handle
// supplies the binding table and model metadata; every live read goes to the
// joystick handle. The binding table is fixed at open time, matching SDL's
// own lifetime for it.
type device struct {
	pad *sdl.Gamepad
	js  *sdl.Joystick

	buttonBinds map[sdl.GamepadButton]*sdl.GamepadBinding
	axisBinds   map[sdl.GamepadAxis][]*sdl.GamepadBinding
}

func (dev *device) Close() {
	sdl.CloseJoystick(dev.js)
	sdl.CloseGamepad(dev.pad)
}

func (dev *device) Connected() bool {
	return sdl.JoystickConnected(dev.js)
}

func (dev *device) ID() gamepad.DeviceID {
	return gamepad.DeviceID(sdl.GetJoystickID(dev.js))
}

func (dev *device) PlayerIndex() int {
	return int(sdl.GetJoystickPlayerIndex(dev.js))
}

// Button resolves the logical button through the controller's binding table
// and reads the bound raw channel. A button without a binding on this
// hardware reads as released.
func (dev *device) Button(b gamepad.Button) bool {
	bind, ok := dev.buttonBinds[buttonCodes[b]]
	if !ok {
		return false
	}
	switch bind.InputType {
	case sdl.GamepadBindTypeButton:
		return sdl.GetJoystickButton(dev.js, bind.InputButton())
	case sdl.GamepadBindTypeHat:
		in := bind.InputHat()
		return sdl.GetJoystickHat(dev.js, in.Hat)&uint8(in.HatMask) != 0
	case sdl.GamepadBindTypeAxis:
		in := bind.InputAxis()
		return axisPressed(int32(sdl.GetJoystickAxis(dev.js, in.Axis)), in.AxisMin, in.AxisMax)
	}
	return false
}

// Axis resolves the logical axis through the binding table. An axis can be
// fed by several half-range bindings (digital triggers, hat directions); the
// sample farthest from rest wins.
func (dev *device) Axis(a gamepad.Axis) int16 {
	var out int16
	for _, bind := range dev.axisBinds[axisCodes[a]] {
		var v int16
		o := bind.OutputAxis()
		switch bind.InputType {
		case sdl.GamepadBindTypeAxis:
			in := bind.InputAxis()
			v = scaleAxis(int32(sdl.GetJoystickAxis(dev.js, in.Axis)), in.AxisMin, in.AxisMax, o.AxisMin, o.AxisMax)
		case sdl.GamepadBindTypeButton:
			if sdl.GetJoystickButton(dev.js, bind.InputButton()) {
				v = clampAxis(int64(o.AxisMax))
			}
		case sdl.GamepadBindTypeHat:
			in := bind.InputHat()
			if sdl.GetJoystickHat(dev.js, in.Hat)&uint8(in.HatMask) != 0 {
				v = clampAxis(int64(o.AxisMax))
			}
		}
		if absAxis(v) > absAxis(out) {
			out = v
		}
	}
	return out
}

// Info fills the post-open metadata snapshot. GUID and SteamHandle stay zero;
// the binding registers no accessor for them.
func (dev *device) Info() gamepad.Info {
	return gamepad.Info{
		Name:            sdl.GetGamepadName(dev.pad),
		Path:            sdl.GetJoystickPath(dev.js),
		Serial:          sdl.GetGamepadSerial(dev.pad),
		Vendor:          sdl.GetJoystickVendor(dev.js),
		Product:         sdl.GetJoystickProduct(dev.js),
		Version:         sdl.GetJoystickProductVersion(dev.js),
		FirmwareVersion: sdl.GetJoystickFirmwareVersion(dev.js),
		Type:            gamepad.TypeFromCode(int(sdl.GetGamepadType(dev.pad))),
		Caps:            dev.Capabilities(),
	}
}

func (dev *device) ConnectionStateCode() int {
	return int(sdl.GetJoystickConnectionState(dev.js))
}

func (dev *device) PowerStateCode() (int, int) {
	var percent int32
	state := sdl.GetJoystickPowerInfo(dev.js, &percent)
	return int(state), int(percent)
}

// Capabilities probes SDL's string-keyed joystick properties. The probes are
// best-effort: a missing property reads as false.
func (dev *device) Capabilities() gamepad.Capabilities {
	props := sdl.GetJoystickProperties(dev.js)
	if props == 0 {
		return gamepad.Capabilities{}
	}
	return gamepad.Capabilities{
		Rumble:        sdl.GetBooleanProperty(props, sdl.PropJoystickCapRumbleBoolean, false),
		TriggerRumble: sdl.GetBooleanProperty(props, sdl.PropJoystickCapTriggerRumbleBoolean, false),
		LED:           sdl.GetBooleanProperty(props, sdl.PropJoystickCapRGBLEDBoolean, false),
	}
}

func (dev *device) Rumble(low, high uint16, durationMS uint32) bool {
	return sdl.RumbleJoystick(dev.js, low, high, durationMS)
}

func (dev *device) RumbleTriggers(left, right uint16, durationMS uint32) bool {
	return sdl.RumbleJoystickTriggers(dev.js, left, right, durationMS)
}

// axisPressed reports whether a raw sample has traveled at least halfway from
// the binding's rest bound toward its active bound.
func axisPressed(v, min, max int32) bool {
	mid := min + (max-min)/2
	if max >= min {
		return v >= mid
	}
	return v <= mid
}

// scaleAxis linearly remaps a raw sample from the binding's input range onto
// its output range.
func scaleAxis(v, inMin, inMax, outMin, outMax int32) int16 {
	if inMax == inMin {
		return 0
	}
	scaled := int64(outMin) + int64(v-inMin)*int64(outMax-outMin)/int64(inMax-inMin)
	return clampAxis(scaled)
}

func clampAxis(v int64) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

func absAxis(v int16) int32 {
	a := int32(v)
	if a < 0 {
		a = -a
	}
	return a
}
