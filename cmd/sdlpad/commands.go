package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/padkit/sdlpad/gamepad"
	"github.com/padkit/sdlpad/gamepad/sdldriver"
)

func newLibrary(cli *CLI, logger *slog.Logger) (*gamepad.Library, error) {
	lib := gamepad.New(sdldriver.New(logger), logger)
	if err := lib.Init(cli.PollInterval); err != nil {
		return nil, err
	}
	return lib, nil
}

// ListCmd prints one line per connected controller.
type ListCmd struct{}

func (c *ListCmd) Run(cli *CLI, logger *slog.Logger) error {
	lib, err := newLibrary(cli, logger)
	if err != nil {
		return err
	}
	defer lib.Dispose()

	ids, err := lib.Devices()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Println("no controllers connected")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tVID:PID\tGUID")
	for _, id := range ids {
		info, err := lib.DeviceInfo(id)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%04x:%04x\t%s\n",
			info.ID, info.Name, info.Type, info.Vendor, info.Product, info.GUID)
	}
	return w.Flush()
}

// WatchCmd polls one controller and prints its normalized stick, trigger and
// D-pad values until interrupted or the controller disconnects.
type WatchCmd struct {
	ID uint32 `arg:"" help:"Device ID to watch (see 'sdlpad list')."`
}

func (c *WatchCmd) Run(cli *CLI, logger *slog.Logger) error {
	lib, err := newLibrary(cli, logger)
	if err != nil {
		return err
	}
	defer lib.Dispose()

	pad, err := lib.Open(gamepad.DeviceID(c.ID))
	if err != nil {
		return err
	}
	defer pad.Close()

	if info, err := pad.Info(); err == nil {
		fmt.Printf("watching %s (id %d), Ctrl+C to stop\n", info.Name, c.ID)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(cli.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-sigCh:
			fmt.Println()
			return nil
		case <-ticker.C:
			if !pad.Connected() {
				fmt.Println("\ncontroller disconnected")
				return nil
			}
			state, err := pad.State()
			if err != nil {
				return err
			}
			n := state.Normalized()
			fmt.Printf("\rL(%+.2f,%+.2f) R(%+.2f,%+.2f) T%+.2f dpad(%+.0f,%+.0f)   ",
				n.LeftX, n.LeftY, n.RightX, n.RightY, n.Triggers, n.DpadX, n.DpadY)
		}
	}
}
