package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lojasmm/wabridge/internal/api"
	"github.com/lojasmm/wabridge/internal/bot"
	"github.com/lojasmm/wabridge/internal/config"
	"github.com/lojasmm/wabridge/internal/logging"
	"github.com/lojasmm/wabridge/internal/outbox"
	"github.com/lojasmm/wabridge/internal/store"
	"github.com/lojasmm/wabridge/internal/whatsapp"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wabridge: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	slog.SetDefault(logger)

	db, err := store.NewBoltStore(filepath.Join(cfg.DataDir, "wabridge.db"))
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer db.Close()

	waClient := whatsapp.NewClient(cfg.WAAPIURL, cfg.WAPhoneNumberID, cfg.WAAccessToken)
	converter := whatsapp.NewConverter(cfg.InteractiveGroupSize)
	sequencer := outbox.NewSequencer()

	// Drop per-recipient lanes nobody has used for an hour
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if n := sequencer.Cleanup(1 * time.Hour); n > 0 {
				logger.Debug("wabridge: outbox cleanup", "removed", n)
			}
		}
	}()

	botHandler := bot.NewHandler(converter, waClient, db, sequencer, logger)
	apiHandler := api.NewHandler(db, botHandler, logger)
	webhookHandler := whatsapp.NewWebhookHandler(cfg.WAVerifyToken, botHandler.HandleReply, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(apiHandler, webhookHandler, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("wabridge: listening", "port", cfg.Port, "group_size", converter.GroupSize())
		logger.Info("wabridge: webhook verify token", "token", cfg.WAVerifyToken)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-quit:
	}
	logger.Info("wabridge: shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("wabridge: stopped")
	return nil
}
