package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/soloqlab/lol-insights/internal/analysis"
	"github.com/soloqlab/lol-insights/internal/api"
	"github.com/soloqlab/lol-insights/internal/config"
)

// runServeCommand exposes the analyzed stats over a read-only REST API
// until interrupted.
func runServeCommand(session *analysis.Session, cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverCfg := api.DefaultConfig()
	serverCfg.Port = cfg.API.Port

	server := api.NewServer(serverCfg, session, logger)
	return server.Start(ctx)
}
