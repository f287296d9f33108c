package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"autopoiesis/internal/core"
	"autopoiesis/internal/logx"
	"autopoiesis/internal/sims/autopoiesis"
	"autopoiesis/internal/stream"
)

// maxCatchUp bounds how many frames one wake-up may compute after a stall.
const maxCatchUp = 4

// Server owns a universe, advances it on a fixed schedule and publishes
// frames through the hub.
type Server struct {
	mu   sync.Mutex
	cfg  autopoiesis.Config
	u    *autopoiesis.Universe
	view int

	hub *stream.Hub
	log logx.Logger
}

// NewServer builds the universe described by cfg.
func NewServer(cfg autopoiesis.Config, view int, hub *stream.Hub, log logx.Logger) (*Server, error) {
	u, err := autopoiesis.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, u: u, view: view, hub: hub, log: log}, nil
}

// Run advances the universe at tps frames per second until ctx ends.
func (s *Server) Run(ctx context.Context, tps int) {
	clock := core.NewFixedStep(tps)
	ticker := time.NewTicker(clock.Interval())
	defer ticker.Stop()

	s.publish(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := clock.Pending(maxCatchUp)
			if n == 0 {
				continue
			}
			start := time.Now()
			s.advance(n)
			if took := time.Since(start); took > clock.Interval() {
				s.log.Warnf("frame budget overrun: %d frames took %s (budget %s)", n, took, clock.Interval())
			}
			s.publish(ctx)
		}
	}
}

func (s *Server) advance(frames int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.u.Step(frames * s.cfg.Params.StepsPerFrame)
}

func (s *Server) snapshot() stream.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view <= 0 {
		return stream.Snapshot(s.u, autopoiesis.Pos{}, 0, 0)
	}
	b := s.u.Bounds()
	size := b.Size()
	origin := autopoiesis.Pos{
		X: b.UpperLeft.X + size.X/2 - s.view/2,
		Y: b.UpperLeft.Y + size.Y/2 - s.view/2,
	}
	return stream.Snapshot(s.u, origin, s.view, s.view)
}

func (s *Server) publish(ctx context.Context) {
	f := s.snapshot()
	if err := s.hub.Publish(ctx, f); err != nil && ctx.Err() == nil {
		s.log.Warnf("publish tick %d: %v", f.Tick, err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// GET /frame
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	data := s.hub.Latest()
	if data == nil {
		var err error
		data, err = s.snapshot().JSON()
		if err != nil {
			http.Error(w, "cannot encode frame: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// GET /census
func (s *Server) handleCensus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	c := s.u.Census()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(c); err != nil {
		http.Error(w, "cannot encode census: "+err.Error(), http.StatusInternalServerError)
	}
}

// POST /reset rebuilds the universe, optionally with ?seed=N.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	cfg := s.cfg
	if v := r.URL.Query().Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "invalid seed: "+err.Error(), http.StatusBadRequest)
			return
		}
		cfg.Seed = seed
	}
	u, err := autopoiesis.NewWithConfig(cfg)
	if err != nil {
		http.Error(w, "cannot reset: "+err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.u = u
	s.mu.Unlock()
	s.log.Infof("universe reset with seed %d", cfg.Seed)
	s.publish(r.Context())

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("reset"))
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/frame", s.handleFrame)
	mux.HandleFunc("/census", s.handleCensus)
	mux.HandleFunc("/reset", s.handleReset)
	mux.HandleFunc("/ws", s.hub.ServeWS)
	return mux
}
