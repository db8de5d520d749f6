package gamepad

import (
	"fmt"
	"math"
	"time"
)

// nativeMax is the backend's full-scale rumble magnitude.
const nativeMax = 0xFFFF

// stopRumbleDuration is how long the zero-intensity stop command runs. It
// only needs to outlast any buffered state in the backend; the motors stay
// silent for its whole span regardless.
const stopRumbleDuration = time.Second

// Rumble drives both motors at equal intensity in [0.0, 1.0] for the given
// duration. The backend owns the timer that ends the effect; issuing a new
// command before the duration elapses overrides the previous one.
func (g *Gamepad) Rumble(intensity float64, duration time.Duration) error {
	return g.RumbleSides(intensity, intensity, duration)
}

// RumbleSides drives the left (low frequency) and right (high frequency)
// motors independently. Intensities are validated before the backend is
// touched; an out-of-range value fails with ErrIntensityRange and no partial
// effect.
func (g *Gamepad) RumbleSides(left, right float64, duration time.Duration) error {
	if err := validateIntensity(left, right); err != nil {
		return err
	}
	g.lib.mu.Lock()
	defer g.lib.mu.Unlock()
	dev, err := g.device()
	if err != nil {
		return err
	}
	if !dev.Rumble(nativeMagnitude(left), nativeMagnitude(right), durationMS(duration)) {
		return fmt.Errorf("gamepad: rumble failed: %s", g.lib.drv.LastError())
	}
	return nil
}

// RumbleTriggers drives the trigger haptic channels independently. Hardware
// without trigger motors ignores the command; that is a silent no-op, not an
// error.
func (g *Gamepad) RumbleTriggers(left, right float64, duration time.Duration) error {
	if err := validateIntensity(left, right); err != nil {
		return err
	}
	g.lib.mu.Lock()
	defer g.lib.mu.Unlock()
	dev, err := g.device()
	if err != nil {
		return err
	}
	dev.RumbleTriggers(nativeMagnitude(left), nativeMagnitude(right), durationMS(duration))
	return nil
}

// StopRumble silences both motors by issuing a zero-intensity command.
func (g *Gamepad) StopRumble() error {
	return g.Rumble(0, stopRumbleDuration)
}

func validateIntensity(values ...float64) error {
	for _, v := range values {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return fmt.Errorf("%w: %v", ErrIntensityRange, v)
		}
	}
	return nil
}

func nativeMagnitude(intensity float64) uint16 {
	return uint16(math.Floor(nativeMax * intensity))
}

func durationMS(d time.Duration) uint32 {
	if d < 0 {
		return 0
	}
	return uint32(d / time.Millisecond)
}
