package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Connor34Bennett/Ganttify-Discord-Bot/bot"
	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/config"
	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/ganttify"
	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/guildstore"
	"github.com/Connor34Bennett/Ganttify-Discord-Bot/internal/keepalive"
)

func main() {
	// Load .env with the godotenv module; a missing file is fine in
	// environments that set real env vars.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", slog.String("error", err.Error()))
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store := guildstore.New()
	api := ganttify.NewClient(cfg.APIBaseURL)

	// Keepalive server so the hosting platform's pings keep us running.
	probe := keepalive.New(logger)
	httpServer := &http.Server{Addr: ":" + cfg.Port, Handler: probe.Engine()}
	go func() {
		logger.Info("keepalive server listening", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("keepalive server stopped unexpectedly", slog.String("error", err.Error()))
		}
	}()

	b, err := bot.New(cfg.DiscordToken, cfg.ClientID, store, api, logger)
	if err != nil {
		logger.Error("cannot create bot", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := b.Run(cfg.ReminderHourUTC); err != nil {
		logger.Error("bot stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown keepalive server", slog.String("error", err.Error()))
	}
}
