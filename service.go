package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"ewintr.nl/videonotes/config"
	"ewintr.nl/videonotes/fetch"
	"ewintr.nl/videonotes/process"
	"ewintr.nl/videonotes/progress"
	"ewintr.nl/videonotes/storage"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "videonotes",
	Short: "Turn YouTube videos into study notes",
	Long: `videonotes takes a YouTube video URL and generates a summary, key points
and structured notes for it.

Run it as an HTTP service, or summarize a single video from the command line.

Examples:
  videonotes serve
  videonotes summarize https://youtu.be/dQw4w9WgXcQ --detail concise
  videonotes summarize https://www.youtube.com/watch?v=dQw4w9WgXcQ --out notes.md`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "file with environment variables, loaded when present")
	rootCmd.AddCommand(serveCmd, summarizeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds what both commands share.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	clock    clockwork.Clock
	pipeline *process.Pipeline
}

func newApp(ctx context.Context, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	clock := clockwork.NewRealClock()

	metadata, err := newMetadataFetcher(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	generator := newGenerator(cfg, clock)
	logger.Info("generator selected", slog.String("generator", generator.Name()))

	return &app{
		cfg:    cfg,
		logger: logger,
		clock:  clock,
		pipeline: process.NewPipeline(
			fetch.WithTimeout(metadata, cfg.Youtube.MetadataTimeout),
			fetch.NewPlaceholderTranscript(cfg.Youtube.TranscriptDelay, clock),
			generator,
			clock,
			logger,
		),
	}, nil
}

// newMetadataFetcher prefers the YouTube Data API and falls back to oEmbed,
// which needs no key.
func newMetadataFetcher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (fetch.MetadataFetcher, error) {
	if cfg.Youtube.ApiKey == "" {
		logger.Info("no youtube api key, using oembed for video details")
		return fetch.NewOEmbed(nil, fetch.DefaultOEmbedEndpoint), nil
	}
	ytClient, err := youtube.NewService(ctx, option.WithAPIKey(cfg.Youtube.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("unable to create youtube service: %w", err)
	}

	return fetch.NewYoutube(ytClient), nil
}

func newGenerator(cfg *config.Config, clock clockwork.Clock) process.Generator {
	if cfg.Provider() == config.ProviderOpenAI {
		return process.NewOpenAIGenerator(process.OpenAIInfo{
			Endpoint: cfg.LLM.Endpoint,
			ApiKey:   cfg.LLM.ApiKey,
			Model:    cfg.LLM.Model,
		})
	}

	return process.NewMockGenerator(cfg.LLM.MockDelay, clock)
}

func (a *app) newPresenter(opts ...progress.Option) *progress.Presenter {
	return progress.New(append([]progress.Option{
		progress.WithClock(a.clock),
		progress.WithInterval(a.cfg.Progress.Interval),
		progress.WithNoticeDelay(a.cfg.Progress.NoticeDelay),
	}, opts...)...)
}

// journal returns the Postgres journal when a database is configured and an
// in-memory one otherwise. The returned func releases it.
func (a *app) journal() (storage.RunRepository, func(), error) {
	if !a.cfg.JournalEnabled() {
		return storage.NewMemory(), func() {}, nil
	}

	db, err := storage.OpenPostgres(storage.PostgresInfo{
		Host:     a.cfg.Postgres.Host,
		Port:     a.cfg.Postgres.Port,
		User:     a.cfg.Postgres.User,
		Password: a.cfg.Postgres.Password,
		Database: a.cfg.Postgres.Database,
	})
	if err != nil {
		return nil, nil, err
	}
	pg, err := storage.NewPostgres(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("unable to migrate postgres: %w", err)
	}
	a.logger.Info("run journal stored in postgres", slog.String("host", a.cfg.Postgres.Host))

	return pg, func() { db.Close() }, nil
}
