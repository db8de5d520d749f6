package gamepad

import "math"

// Deadzone is the normalized magnitude below which an axis reading is forced
// to exactly zero, suppressing sensor noise and stick drift.
const Deadzone = 0.01

const (
	axisCenterOffset = 128
	axisRange        = 32768
	triggerMax       = 32767
)

// NormalizeAxis converts a raw signed 16-bit axis reading into [-1.0, 1.0].
// The reading is centered on the fixed midpoint offset, deadzone-suppressed
// and clamped. Pure: identical input always yields identical output.
func NormalizeAxis(raw int16) float64 {
	return normalize(float64(raw))
}

// NormalizeTriggers folds the two trigger channels into one combined axis in
// [-1.0, 1.0]: fully pressed right trigger is +1, fully pressed left is -1,
// equal pressure cancels to 0.
func NormalizeTriggers(left, right int16) float64 {
	// Subtract in float so the difference cannot wrap the int16 range.
	return normalize(float64(right) - float64(left))
}

// NormalizeTrigger converts a single raw trigger reading into [0.0, 1.0].
func NormalizeTrigger(raw int16) float64 {
	v := float64(raw) / triggerMax
	if v < Deadzone {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NormalizeButtonPair folds two mutually exclusive directional buttons into a
// ternary axis: +1 when only positive is pressed, -1 when only negative is,
// 0 otherwise. Both pressed cancels to 0.
func NormalizeButtonPair(negative, positive bool) float64 {
	var v float64
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}

func normalize(v float64) float64 {
	n := (v - axisCenterOffset) / axisRange
	if math.Abs(n) < Deadzone {
		return 0
	}
	if n < -1 {
		return -1
	}
	if n > 1 {
		return 1
	}
	return n
}
