// Package server exposes the broadcast service over HTTP: a WebSocket
// endpoint streaming controller state and a JSON listing of connected
// devices.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/padkit/sdlpad/gamepad"
	"github.com/padkit/sdlpad/internal/hub"
)

type Server struct {
	lib        *gamepad.Library
	hub        *hub.Hub
	monitor    *hub.Monitor
	log        *slog.Logger
	addr       string
	httpServer *http.Server
}

func New(lib *gamepad.Library, h *hub.Hub, m *hub.Monitor, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		lib:     lib,
		hub:     h,
		monitor: m,
		log:     logger,
		addr:    addr,
	}
}

func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", handleWebSocket(s.hub, s.monitor, s.log))
	mux.HandleFunc("/devices", s.handleDevices)

	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	s.log.Info("http server listening", "addr", s.addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		s.log.Info("shutting down http server")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func (s *Server) handleDevices(w http.ResponseWriter, r *http.Request) {
	ids, err := s.lib.Devices()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	infos := make([]gamepad.DeviceInfo, 0, len(ids))
	for _, id := range ids {
		info, err := s.lib.DeviceInfo(id)
		if err != nil {
			// The controller can vanish between enumeration and query.
			continue
		}
		infos = append(infos, info)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(infos); err != nil {
		s.log.Error("encoding device list", "error", err)
	}
}
