package gamepad

// ConnectionState classifies how a controller is physically attached.
type ConnectionState int

const (
	ConnectionInvalid ConnectionState = iota
	ConnectionUnknown
	ConnectionWired
	ConnectionWireless
)

// Raw connection-state codes as reported by the backend.
const (
	connectionCodeInvalid  = -1
	connectionCodeUnknown  = 0
	connectionCodeWired    = 1
	connectionCodeWireless = 2
)

// ConnectionStateFromCode maps a raw backend code onto a ConnectionState.
// The backend distinguishes "could not determine" (code 0) from an invalid
// query (code -1); both are in-contract. Any other code is a defect in the
// backend integration and yields a ProtocolViolationError rather than a
// silent default.
func ConnectionStateFromCode(code int) (ConnectionState, error) {
	switch code {
	case connectionCodeInvalid:
		return ConnectionInvalid, nil
	case connectionCodeUnknown:
		return ConnectionUnknown, nil
	case connectionCodeWired:
		return ConnectionWired, nil
	case connectionCodeWireless:
		return ConnectionWireless, nil
	default:
		return ConnectionInvalid, &ProtocolViolationError{What: "connection-state", Code: code}
	}
}

func (c ConnectionState) String() string {
	switch c {
	case ConnectionInvalid:
		return "invalid"
	case ConnectionUnknown:
		return "unknown"
	case ConnectionWired:
		return "wired"
	case ConnectionWireless:
		return "wireless"
	}
	return "invalid"
}
