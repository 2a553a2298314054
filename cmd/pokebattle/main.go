package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ericogr/pokebattle/internal/api"
	"github.com/ericogr/pokebattle/internal/constants"
	"github.com/ericogr/pokebattle/internal/logging"
	"github.com/ericogr/pokebattle/internal/stream"
	"github.com/ericogr/pokebattle/internal/version"
)

func main() {
	// Path may be provided via POKEBATTLE_CONFIG or defaults to
	// ./pokebattle_config.json in the current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg := loadConfigOrExit(configPath)
	if addr := os.Getenv(constants.EnvListenAddr); addr != "" {
		cfg.ServerAddress = addr
	}

	data := loadRulesetOrExit(cfg)
	repo := createRepositoryOrExit(cfg, data)
	set := settings(cfg, data)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	handler := api.NewBattleHandler(repo, set, stream.NewHub())
	startTimeoutScanner(ctx, handler, cfg.ScanInterval)

	srv := &http.Server{Addr: cfg.ServerAddress, Handler: api.NewRouter(handler)}

	go func() {
		logging.Info("Server started", logging.Fields{constants.LogFieldAddr: cfg.ServerAddress, "version": version.String()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("Failed to start server", err, nil)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("graceful shutdown failed", err, nil)
	}
	logging.Info("Server stopped", nil)
}
