package gamepad

// Type classifies the controller model family as reported by the backend.
type Type int

const (
	TypeUnknown Type = iota
	TypeStandard
	TypeXbox360
	TypeXboxOne
	TypePS3
	TypePS4
	TypePS5
	TypeSwitchPro
	TypeJoyconLeft
	TypeJoyconRight
	TypeJoyconPair
)

// TypeFromCode maps a raw backend type code onto a Type. Metadata is
// best-effort: unrecognized codes fall back to TypeUnknown.
func TypeFromCode(code int) Type {
	if code < int(TypeStandard) || code > int(TypeJoyconPair) {
		return TypeUnknown
	}
	return Type(code)
}

func (t Type) String() string {
	switch t {
	case TypeStandard:
		return "standard"
	case TypeXbox360:
		return "xbox360"
	case TypeXboxOne:
		return "xboxone"
	case TypePS3:
		return "ps3"
	case TypePS4:
		return "ps4"
	case TypePS5:
		return "ps5"
	case TypeSwitchPro:
		return "switch_pro"
	case TypeJoyconLeft:
		return "joycon_left"
	case TypeJoyconRight:
		return "joycon_right"
	case TypeJoyconPair:
		return "joycon_pair"
	}
	return "unknown"
}

// Capabilities reports haptics/LED support. The flags are best-effort
// booleans backed by whatever probing the backend exposes; absence of a flag
// means "not known to be supported", not "known to be unsupported".
type Capabilities struct {
	Rumble        bool `json:"rumble"`
	TriggerRumble bool `json:"triggerRumble"`
	LED           bool `json:"led"`
}

// DeviceInfo is the metadata queryable from a bare device ID, without opening
// the controller. Re-queried on each call, never cached.
type DeviceInfo struct {
	ID      DeviceID `json:"id"`
	Name    string   `json:"name"`
	Path    string   `json:"path"`
	GUID    string   `json:"guid"`
	Vendor  uint16   `json:"vendor"`
	Product uint16   `json:"product"`
	Version uint16   `json:"version"`
	Type    Type     `json:"type"`
}

// Info is the full metadata snapshot of an opened controller.
type Info struct {
	Name            string       `json:"name"`
	Path            string       `json:"path"`
	Serial          string       `json:"serial"`
	GUID            string       `json:"guid"`
	Vendor          uint16       `json:"vendor"`
	Product         uint16       `json:"product"`
	Version         uint16       `json:"version"`
	FirmwareVersion uint16       `json:"firmwareVersion"`
	Type            Type         `json:"type"`
	SteamHandle     uint64       `json:"steamHandle,omitempty"`
	Caps            Capabilities `json:"caps"`
}
