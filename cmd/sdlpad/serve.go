package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/padkit/sdlpad/internal/hub"
	"github.com/padkit/sdlpad/internal/server"
	"github.com/padkit/sdlpad/internal/tray"
)

// ServeCmd runs the WebSocket broadcast service.
type ServeCmd struct {
	Addr string `help:"HTTP listen address." default:":8080"`
	Tray bool   `help:"Show a system tray icon (Windows only)." default:"true"`
}

func (c *ServeCmd) Run(cli *CLI, logger *slog.Logger) error {
	lib, err := newLibrary(cli, logger)
	if err != nil {
		return err
	}
	defer lib.Dispose()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	h := hub.NewHub(logger)
	go h.Run()

	monitor := hub.NewMonitor(lib, h, logger, cli.PollInterval)
	monitorDone := make(chan struct{})
	go func() {
		monitor.Run(ctx)
		close(monitorDone)
	}()

	srv := server.New(lib, h, monitor, logger, c.Addr)
	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	logger.Info("sdlpad serving", "addr", c.Addr)

	shutdownRequested := make(chan struct{})
	if c.Tray && runtime.GOOS == "windows" {
		go func() {
			t := tray.New(logger, "http://localhost"+c.Addr, func() {
				close(shutdownRequested)
			})
			t.Run(tray.Icon())
		}()
	} else {
		logger.Info("press Ctrl+C to exit")
	}

	var runErr error
	select {
	case <-sigCh:
		logger.Info("shutting down")
	case <-shutdownRequested:
		logger.Info("shutdown requested from tray")
	case runErr = <-serverErrCh:
		logger.Error("http server error", "error", runErr)
	}
	cancel()
	<-monitorDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http server shutdown", "error", err)
	}
	return runErr
}
