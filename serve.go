package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ewintr.nl/videonotes/feed"
	"ewintr.nl/videonotes/handler"
	"ewintr.nl/videonotes/session"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, os.Stderr)
	if err != nil {
		return err
	}
	logger := a.logger

	journal, closeJournal, err := a.journal()
	if err != nil {
		logger.Error("unable to open run journal", slog.String("error", err.Error()))
		return err
	}
	defer closeJournal()

	var inbox handler.Inbox
	if a.cfg.InboxEnabled() {
		inbox = feed.NewMiniflux(feed.MinifluxInfo{
			Endpoint: a.cfg.Miniflux.Endpoint,
			ApiKey:   a.cfg.Miniflux.ApiKey,
		})
		logger.Info("miniflux inbox enabled", slog.String("endpoint", a.cfg.Miniflux.Endpoint))
	}

	registry := session.NewRegistry(func() *session.Session {
		return session.New(a.pipeline, a.newPresenter(), journal, a.clock, logger)
	})
	defer registry.Close()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.APIPort),
		Handler:           handler.NewServer(registry, journal, inbox, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	logger.Info("http server started", slog.Int("port", a.cfg.APIPort))

	select {
	case <-ctx.Done():
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", slog.String("error", err.Error()))
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("unable to shut down http server", slog.String("error", err.Error()))
	}
	logger.Info("service stopped")

	return nil
}
