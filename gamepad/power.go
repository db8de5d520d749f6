package gamepad

// PowerState classifies a controller's battery situation. Power telemetry is
// best-effort hardware reporting; readings can be wrong or missing at any
// time, which is why unknown codes degrade instead of failing.
type PowerState int

const (
	PowerError PowerState = iota
	PowerUnknown
	PowerOnBattery
	PowerNoBattery
	PowerCharging
	PowerCharged
)

// Raw power-state codes as reported by the backend.
const (
	powerCodeError     = -1
	powerCodeUnknown   = 0
	powerCodeOnBattery = 1
	powerCodeNoBattery = 2
	powerCodeCharging  = 3
	powerCodeCharged   = 4
)

// PowerStateFromCode maps a raw backend code onto a PowerState. Total on all
// integers: unrecognized codes map to PowerError, never to a fault.
func PowerStateFromCode(code int) PowerState {
	switch code {
	case powerCodeUnknown:
		return PowerUnknown
	case powerCodeOnBattery:
		return PowerOnBattery
	case powerCodeNoBattery:
		return PowerNoBattery
	case powerCodeCharging:
		return PowerCharging
	case powerCodeCharged:
		return PowerCharged
	default:
		return PowerError
	}
}

func (p PowerState) String() string {
	switch p {
	case PowerUnknown:
		return "unknown"
	case PowerOnBattery:
		return "on battery"
	case PowerNoBattery:
		return "no battery"
	case PowerCharging:
		return "charging"
	case PowerCharged:
		return "charged"
	}
	return "error"
}
