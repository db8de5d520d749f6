// Package tray puts the broadcast service into the system tray with a
// device-list shortcut and an exit entry.
package tray

import (
	"log/slog"
	"os/exec"
	"runtime"
	"sync"
	"sync/atomic"

	"fyne.io/systray"
)

// ShutdownFunc is called when "Exit" is clicked
type ShutdownFunc func()

// Tray manages the system tray icon and menu
type Tray struct {
	log          *slog.Logger
	url          string
	shutdownFunc ShutdownFunc
	once         sync.Once
	shuttingDown atomic.Bool
	menuDevices  *systray.MenuItem
	menuExit     *systray.MenuItem
}

// New creates a new Tray instance. url is the HTTP address of the service.
func New(logger *slog.Logger, url string, shutdownFn ShutdownFunc) *Tray {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tray{
		log:          logger,
		url:          url,
		shutdownFunc: shutdownFn,
	}
}

// Run initializes and runs the system tray (blocks until Quit())
func (t *Tray) Run(iconData []byte) {
	systray.Run(func() {
		t.onReady(iconData)
	}, func() {
		t.onExit()
	})
}

func (t *Tray) onReady(iconData []byte) {
	if iconData != nil {
		systray.SetIcon(iconData)
	}
	systray.SetTitle("sdlpad")
	systray.SetTooltip("sdlpad - " + t.url)

	t.menuDevices = systray.AddMenuItem("Show Devices", "Open the device list")
	t.menuExit = systray.AddMenuItem("Exit", "Quit application")

	go t.handleMenuClicks()

	t.log.Info("system tray initialized")
}

func (t *Tray) handleMenuClicks() {
	for {
		select {
		case <-t.menuDevices.ClickedCh:
			if !t.shuttingDown.Load() {
				t.openBrowser()
			}
		case <-t.menuExit.ClickedCh:
			if t.shuttingDown.CompareAndSwap(false, true) {
				t.once.Do(t.shutdownFunc)
				systray.Quit()
				return
			}
		}
	}
}

func (t *Tray) onExit() {
	t.shuttingDown.Store(true)
	t.log.Info("system tray exiting")
}

// openBrowser opens the device listing in the default web browser.
func (t *Tray) openBrowser() {
	if t.shuttingDown.Load() {
		return
	}

	url := t.url + "/devices"
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		t.log.Warn("failed to open browser", "error", err)
	}
}
