package tray

import _ "embed"

//go:embed icon.ico
var iconData []byte

// Icon is the embedded image handed to the system tray.
func Icon() []byte {
	return iconData
}
