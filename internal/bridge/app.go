// SPDX-License-Identifier: Apache-2.0

// Package bridge assembles the application: adapters, icon cache, services,
// the streaming client, and the optional status server.
package bridge

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rudism/pushover-to-gotify/internal/adapter"
	"github.com/rudism/pushover-to-gotify/internal/config"
	"github.com/rudism/pushover-to-gotify/internal/logger"
	"github.com/rudism/pushover-to-gotify/internal/service"
	"github.com/rudism/pushover-to-gotify/internal/status"
	"github.com/rudism/pushover-to-gotify/internal/store"
	"github.com/rudism/pushover-to-gotify/internal/stream"
)

type App struct {
	stream *stream.Client
	status *status.Server
	logger *logger.Logger
}

func NewApp(cfg *config.BridgeConfig, log *logger.Logger) (*App, error) {
	pushover, err := adapter.NewPushoverAdapter(cfg.Pushover, log)
	if err != nil {
		return nil, fmt.Errorf("create pushover adapter: %w", err)
	}

	gotify, err := adapter.NewGotifyAdapter(cfg.Gotify, log)
	if err != nil {
		return nil, fmt.Errorf("create gotify adapter: %w", err)
	}

	icons := store.NewIconCache(cfg.Cache.IconDir, pushover, log)
	cursor := service.NewCursorTracker(pushover, log)
	dispatcher := service.NewDispatcher(gotify, icons, cursor, log)
	fetcher := service.NewFetcher(pushover, dispatcher, log)

	client := stream.NewClient(
		cfg.Pushover,
		cfg.Stream,
		stream.NewWebsocketDialer(cfg.Pushover.StreamHost),
		fetcher,
		log,
	)

	app := &App{stream: client, logger: log}

	if cfg.Status.Address != "" {
		handler := status.NewHandler(client, cursor, log)
		app.status = status.NewServer(handler, cfg.Status, log)
	}

	return app, nil
}

// Run connects the stream and blocks until a stop signal arrives.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if a.status != nil {
		go a.status.RunServer()
	}

	a.stream.Connect(ctx)

	<-ctx.Done()

	if a.status != nil {
		a.status.Shutdown()
	}

	a.logger.Info().Msg("bridge shut down gracefully")

	return nil
}
