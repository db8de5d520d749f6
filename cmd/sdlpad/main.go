// sdlpad is a command line frontend for the gamepad library: it lists
// connected controllers, live-prints normalized input for one of them, or
// broadcasts controller state over WebSocket.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"

	"github.com/padkit/sdlpad/internal/log"
)

type CLI struct {
	Config kong.ConfigFlag `help:"Load configuration from a TOML file."`

	Log struct {
		Level string `help:"Log level (debug, info, warn, error)." default:"info"`
		File  string `help:"Write logs to this file instead of the console." type:"path"`
	} `embed:"" prefix:"log-"`

	PollInterval time.Duration `help:"Device polling interval." default:"16ms"`

	List  ListCmd  `cmd:"" default:"withargs" help:"List connected controllers."`
	Watch WatchCmd `cmd:"" help:"Continuously print normalized input of one controller."`
	Serve ServeCmd `cmd:"" help:"Broadcast controller state over WebSocket."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("sdlpad"),
		kong.Description("Polled, normalized access to game controllers."),
		kong.UsageOnError(),
		kong.Configuration(kongtoml.Loader, "/etc/sdlpad/sdlpad.toml", "~/.config/sdlpad/sdlpad.toml"),
	)

	logger, closer, err := log.Setup(cli.Log.Level, cli.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to setup logger:", err)
		os.Exit(2)
	}
	if closer != nil {
		defer closer.Close()
	}

	ctx.Bind(&cli)
	ctx.Bind(logger)
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
