package gamepad

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned for device operations attempted before a
	// successful Library.Init or after Dispose.
	ErrNotInitialized = errors.New("gamepad: library not initialized")

	// ErrDeviceUnavailable is returned when a device ID or player index does
	// not correspond to a currently connected controller.
	ErrDeviceUnavailable = errors.New("gamepad: device unavailable")

	// ErrClosed is returned for operations on a handle whose Close has
	// already been called.
	ErrClosed = errors.New("gamepad: handle is closed")

	// ErrIntensityRange is returned when a rumble intensity lies outside
	// [0.0, 1.0]. The backend is not touched in that case.
	ErrIntensityRange = errors.New("gamepad: rumble intensity outside [0.0, 1.0]")
)

// ProtocolViolationError reports a raw code from the backend that is outside
// its documented value set. It marks an integration defect, not a runtime
// condition to recover from.
type ProtocolViolationError struct {
	What string
	Code int
}

func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("gamepad: backend reported undefined %s code %d", e.What, e.Code)
}
