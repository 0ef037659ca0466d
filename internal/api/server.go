// Package api provides the read-only HTTP API for observing engine
// state. All endpoints are GET; mutation happens only through the
// engine's own methods, never over HTTP.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/talgya/high-society/internal/society"
)

// Server serves engine snapshots over HTTP.
type Server struct {
	Engine *society.Engine
	Wealth society.WealthLedger
	Port   int
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/connections", s.handleConnections)
	mux.HandleFunc("/api/v1/events", s.handleEvents)
	mux.HandleFunc("/api/v1/capital", s.handleCapital)

	addr := fmt.Sprintf(":%d", s.Port)
	go func() {
		slog.Info("api listening", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("api server stopped", "error", err)
		}
	}()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("api encode failed", "error", err)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.Engine.Snapshot()

	live := 0
	for _, ev := range snap.Events {
		if !ev.Attended {
			live++
		}
	}

	writeJSON(w, map[string]any{
		"game_time":        snap.GameTime,
		"connections":      len(snap.Connections),
		"live_events":      live,
		"social_capital":   snap.Capital,
		"networking_level": snap.NetworkingLevel,
		"wealth":           s.Wealth.Balance(),
	})
}

func (s *Server) handleConnections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Engine.Snapshot().Connections)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	snap := s.Engine.Snapshot()
	if r.URL.Query().Get("live") == "true" {
		live := snap.Events[:0]
		for _, ev := range snap.Events {
			if !ev.Attended {
				live = append(live, ev)
			}
		}
		writeJSON(w, live)
		return
	}
	writeJSON(w, snap.Events)
}

func (s *Server) handleCapital(w http.ResponseWriter, r *http.Request) {
	snap := s.Engine.Snapshot()
	writeJSON(w, map[string]any{
		"social_capital":   snap.Capital,
		"networking_level": snap.NetworkingLevel,
	})
}
