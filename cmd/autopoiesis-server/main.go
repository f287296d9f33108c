package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autopoiesis/internal/logx"
	"autopoiesis/internal/sims/autopoiesis"
	"autopoiesis/internal/stream"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	cfg, err := loadServerConfig(fs, os.Args[1:], os.Getenv)
	logger := logx.New(cfg.LogLevel)
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	simCfg := autopoiesis.FromMap(cfg.Sim)
	hub := stream.NewHub(logger)
	defer hub.Close()

	srv, err := NewServer(simCfg, cfg.View, hub, logger)
	if err != nil {
		logger.Fatalf("build universe: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go srv.Run(ctx, cfg.TPS)

	httpSrv := &http.Server{Addr: cfg.Addr, Handler: srv.routes()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	logger.Infof("autopoiesis-server listening on %s (%dx%d, %d catalysts, decay %.3f, %d tps)",
		cfg.Addr, simCfg.Width, simCfg.Height, simCfg.Params.Catalysts, simCfg.Params.DecayRate, cfg.TPS)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("listen: %v", err)
	}
	logger.Infof("shut down at tick %d", srv.snapshot().Tick)
}
