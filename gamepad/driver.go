// Package gamepad abstracts a physical game controller into a polled,
// normalized input device. A Library owns the single driver connection and a
// background polling tick; Gamepad handles expose per-controller state,
// metadata, power/connection classification and rumble commands.
package gamepad

// DeviceID is the driver-assigned identifier for a controller. It is stable
// from physical connection until disconnection, unlike the player index which
// is an ordinal that shifts as controllers come and go. 0 is the driver's
// invalid sentinel.
type DeviceID uint32

// Button identifies one digital input channel.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDpadUp
	ButtonDpadDown
	ButtonDpadLeft
	ButtonDpadRight
)

// Axis identifies one analog input channel. Raw readings are signed 16-bit.
type Axis int

const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisLeftTrigger
	AxisRightTrigger
)

// Driver is the boundary with the native input/haptics backend. All methods
// are expected to be non-blocking reads or writes of already-buffered state.
// Failures are reported SDL-style: a zero/false/nil result plus a process-wide
// error string readable through LastError.
type Driver interface {
	// SetHints applies platform hints needed for reliable event delivery.
	// Called before Init.
	SetHints()
	// Init starts the input subsystem. Returns false on failure, with the
	// cause available from LastError.
	Init() bool
	// Quit shuts the input subsystem down.
	Quit()
	// PumpEvents drains the backend's event queue and reports whether a
	// queue-level quit signal was observed.
	PumpEvents() (quit bool)
	// Update refreshes the buffered state of all opened controllers.
	Update()

	// Devices returns the IDs of all currently connected controllers, in
	// backend order.
	Devices() []DeviceID
	// DeviceInfo returns pre-open metadata for a connected controller, or
	// ok=false when the ID is not connected.
	DeviceInfo(id DeviceID) (info DeviceInfo, ok bool)
	// Open acquires a native reference for the given device ID, or nil when
	// the ID does not correspond to a connected controller.
	Open(id DeviceID) Device

	// LastError returns the process-wide error string set by the most recent
	// failing backend call. ClearError resets it.
	LastError() string
	ClearError()
}

// Device is one opened controller as seen by the backend. A Device reference
// is exclusively owned by the Gamepad handle that opened it; opening the same
// device ID twice is undefined behavior in the backend and is not prevented
// here.
type Device interface {
	Close()
	// Connected is a point-in-time liveness check; the controller can
	// disconnect between any two calls.
	Connected() bool
	// ID returns the device ID, or 0 when the backend no longer knows it.
	ID() DeviceID
	// PlayerIndex returns the transient ordinal, or -1 when unset.
	PlayerIndex() int

	Button(b Button) bool
	Axis(a Axis) int16

	// Info returns the full post-open metadata snapshot.
	Info() Info
	// ConnectionStateCode returns the raw connection-state code.
	ConnectionStateCode() int
	// PowerStateCode returns the raw power-state code and the battery
	// percentage, -1 when the percentage cannot be determined.
	PowerStateCode() (code, percent int)
	// Capabilities reports best-effort haptics/LED support flags.
	Capabilities() Capabilities

	// Rumble drives the low/high frequency motors at the given native
	// magnitudes for a duration in milliseconds. Returns false on failure.
	Rumble(low, high uint16, durationMS uint32) bool
	// RumbleTriggers drives the trigger haptic channels. Unsupported
	// hardware reports failure; callers treat that as a no-op.
	RumbleTriggers(left, right uint16, durationMS uint32) bool
}
