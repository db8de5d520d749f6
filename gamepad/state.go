package gamepad

// GamepadState is a value snapshot of every input channel, read in one pass.
// It is immutable once constructed and has no identity beyond its values.
type GamepadState struct {
	ButtonA     bool `json:"buttonA"`
	ButtonB     bool `json:"buttonB"`
	ButtonX     bool `json:"buttonX"`
	ButtonY     bool `json:"buttonY"`
	ButtonBack  bool `json:"buttonBack"`
	ButtonGuide bool `json:"buttonGuide"`
	ButtonStart bool `json:"buttonStart"`

	LeftStickButton  bool `json:"leftStickButton"`
	RightStickButton bool `json:"rightStickButton"`

	DpadUp    bool `json:"dpadUp"`
	DpadDown  bool `json:"dpadDown"`
	DpadLeft  bool `json:"dpadLeft"`
	DpadRight bool `json:"dpadRight"`

	LeftShoulder  bool `json:"leftShoulder"`
	RightShoulder bool `json:"rightShoulder"`

	LeftX  int16 `json:"leftX"`
	LeftY  int16 `json:"leftY"`
	RightX int16 `json:"rightX"`
	RightY int16 `json:"rightY"`

	LeftTrigger  int16 `json:"leftTrigger"`
	RightTrigger int16 `json:"rightTrigger"`
}

// NormalLeftX returns the left stick X axis in [-1.0, 1.0].
func (s GamepadState) NormalLeftX() float64 { return NormalizeAxis(s.LeftX) }

// NormalLeftY returns the left stick Y axis in [-1.0, 1.0].
func (s GamepadState) NormalLeftY() float64 { return NormalizeAxis(s.LeftY) }

// NormalRightX returns the right stick X axis in [-1.0, 1.0].
func (s GamepadState) NormalRightX() float64 { return NormalizeAxis(s.RightX) }

// NormalRightY returns the right stick Y axis in [-1.0, 1.0].
func (s GamepadState) NormalRightY() float64 { return NormalizeAxis(s.RightY) }

// NormalTriggers returns both triggers folded into one axis in [-1.0, 1.0];
// right trigger pulls positive, left pulls negative.
func (s GamepadState) NormalTriggers() float64 {
	return NormalizeTriggers(s.LeftTrigger, s.RightTrigger)
}

// NormalLeftTrigger returns the left trigger alone in [0.0, 1.0].
func (s GamepadState) NormalLeftTrigger() float64 { return NormalizeTrigger(s.LeftTrigger) }

// NormalRightTrigger returns the right trigger alone in [0.0, 1.0].
func (s GamepadState) NormalRightTrigger() float64 { return NormalizeTrigger(s.RightTrigger) }

// NormalDpadX returns the D-pad left/right pair as a ternary axis.
func (s GamepadState) NormalDpadX() float64 { return NormalizeButtonPair(s.DpadLeft, s.DpadRight) }

// NormalDpadY returns the D-pad down/up pair as a ternary axis; up is +1.
func (s GamepadState) NormalDpadY() float64 { return NormalizeButtonPair(s.DpadDown, s.DpadUp) }

// NormalShoulders returns the shoulder pair as a ternary axis; the right
// shoulder is +1.
func (s GamepadState) NormalShoulders() float64 {
	return NormalizeButtonPair(s.LeftShoulder, s.RightShoulder)
}

// Normalized is the normalized view of a snapshot, convenient for callers
// that only consume rescaled values (and for the wire format of the
// broadcast service).
type Normalized struct {
	LeftX        float64 `json:"leftX"`
	LeftY        float64 `json:"leftY"`
	RightX       float64 `json:"rightX"`
	RightY       float64 `json:"rightY"`
	Triggers     float64 `json:"triggers"`
	LeftTrigger  float64 `json:"leftTrigger"`
	RightTrigger float64 `json:"rightTrigger"`
	DpadX        float64 `json:"dpadX"`
	DpadY        float64 `json:"dpadY"`
	Shoulders    float64 `json:"shoulders"`
}

// Normalized returns all derived axes of the snapshot in one struct.
func (s GamepadState) Normalized() Normalized {
	return Normalized{
		LeftX:        s.NormalLeftX(),
		LeftY:        s.NormalLeftY(),
		RightX:       s.NormalRightX(),
		RightY:       s.NormalRightY(),
		Triggers:     s.NormalTriggers(),
		LeftTrigger:  s.NormalLeftTrigger(),
		RightTrigger: s.NormalRightTrigger(),
		DpadX:        s.NormalDpadX(),
		DpadY:        s.NormalDpadY(),
		Shoulders:    s.NormalShoulders(),
	}
}

// analogThreshold is the normalized delta below which two analog readings are
// considered equal when deciding whether a snapshot changed.
const analogThreshold = 0.01

func analogEqual(a, b int16) bool {
	d := NormalizeAxis(a) - NormalizeAxis(b)
	if d < 0 {
		d = -d
	}
	return d < analogThreshold
}

// StateChanged reports whether the new snapshot differs from the old one:
// exact compare for digital channels, epsilon compare for analog ones so
// sensor jitter below the resolution of consumers is not reported.
func StateChanged(old, new_ GamepadState) bool {
	oldDigital, newDigital := old, new_
	oldDigital.LeftX, oldDigital.LeftY, oldDigital.RightX, oldDigital.RightY = 0, 0, 0, 0
	oldDigital.LeftTrigger, oldDigital.RightTrigger = 0, 0
	newDigital.LeftX, newDigital.LeftY, newDigital.RightX, newDigital.RightY = 0, 0, 0, 0
	newDigital.LeftTrigger, newDigital.RightTrigger = 0, 0
	if oldDigital != newDigital {
		return true
	}
	return !analogEqual(old.LeftX, new_.LeftX) ||
		!analogEqual(old.LeftY, new_.LeftY) ||
		!analogEqual(old.RightX, new_.RightX) ||
		!analogEqual(old.RightY, new_.RightY) ||
		!analogEqual(old.LeftTrigger, new_.LeftTrigger) ||
		!analogEqual(old.RightTrigger, new_.RightTrigger)
}
