package process

import (
	"context"

	"ewintr.nl/videonotes/fetch"
	"ewintr.nl/videonotes/model"
	"github.com/jonboulle/clockwork"
	"golang.org/x/exp/slog"
)

// Listener receives the status transitions of a single run.
type Listener interface {
	OnStatus(status model.Status)
}

type ListenerFunc func(status model.Status)

func (f ListenerFunc) OnStatus(status model.Status) { f(status) }

type nopListener struct{}

func (nopListener) OnStatus(model.Status) {}

// Pipeline runs the stages validate, extract, analyze, summarize and format
// for one request. It holds no per-run state, so one Pipeline can serve
// concurrent runs.
type Pipeline struct {
	metadata    fetch.MetadataFetcher
	transcripts fetch.TranscriptFetcher
	generator   Generator
	clock       clockwork.Clock
	logger      *slog.Logger
}

func NewPipeline(metadata fetch.MetadataFetcher, transcripts fetch.TranscriptFetcher, generator Generator, clock clockwork.Clock, logger *slog.Logger) *Pipeline {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Pipeline{
		metadata:    metadata,
		transcripts: transcripts,
		generator:   generator,
		clock:       clock,
		logger:      logger,
	}
}

// Run processes req and reports each stage to l. On failure it reports
// model.StatusError exactly once and returns an error that matches one of
// model.ErrInvalidInput, model.ErrDependency or model.ErrUpstream.
func (p *Pipeline) Run(ctx context.Context, req model.Request, l Listener) (*model.Result, error) {
	if l == nil {
		l = nopListener{}
	}
	fail := func(stage model.Status, err error) (*model.Result, error) {
		p.logger.Error("failed to process video", slog.String("url", req.VideoURL), slog.String("stage", string(stage)), slog.String("error", err.Error()))
		l.OnStatus(model.StatusError)
		return nil, err
	}

	l.OnStatus(model.StatusValidating)
	ytID, ok := fetch.ExtractVideoID(req.VideoURL)
	if !ok {
		return fail(model.StatusValidating, model.InvalidInput("invalid YouTube URL %q", req.VideoURL))
	}
	level := req.DetailLevel.Normalize()
	if !level.Valid() {
		return fail(model.StatusValidating, model.InvalidInput("unknown detail level %q", req.DetailLevel))
	}
	logger := p.logger.With(slog.String("video", string(ytID)))

	l.OnStatus(model.StatusExtracting)
	logger.Info("processing video", slog.String("stage", string(model.StatusExtracting)))
	details := p.videoDetails(ctx, ytID, logger)

	l.OnStatus(model.StatusAnalyzing)
	logger.Info("processing video", slog.String("stage", string(model.StatusAnalyzing)))
	transcript, err := p.transcripts.FetchTranscript(ctx, ytID)
	if err != nil {
		return fail(model.StatusAnalyzing, model.Dependency("failed to fetch video transcript", err))
	}

	l.OnStatus(model.StatusSummarizing)
	logger.Info("processing video", slog.String("stage", string(model.StatusSummarizing)), slog.String("generator", p.generator.Name()))
	content, err := p.generator.Generate(ctx, GenerationRequest{
		DetailLevel: level,
		Video:       details,
		Transcript:  transcript,
	})
	if err != nil {
		return fail(model.StatusSummarizing, model.Upstream(p.generator.Name(), err))
	}
	if len(content.KeyPoints) == 0 {
		return fail(model.StatusSummarizing, model.Upstream(p.generator.Name(), errNoKeyPoints))
	}

	l.OnStatus(model.StatusFormatting)
	keyPoints := make([]string, len(content.KeyPoints))
	copy(keyPoints, content.KeyPoints)
	result := &model.Result{
		VideoDetails: details,
		Summary:      content.Summary,
		KeyPoints:    keyPoints,
		Notes:        content.Notes,
		Timestamp:    p.clock.Now(),
	}

	l.OnStatus(model.StatusCompleted)
	logger.Info("video processed", slog.Int("keypoints", len(keyPoints)))

	return result, nil
}

// videoDetails never fails. A failed lookup degrades to the fallback details.
func (p *Pipeline) videoDetails(ctx context.Context, ytID model.YoutubeVideoID, logger *slog.Logger) model.VideoDetails {
	md, err := p.metadata.FetchMetadata(ctx, ytID)
	if err != nil {
		logger.Warn("failed to fetch video details, using fallback", slog.String("error", err.Error()))
		return model.FallbackDetails(ytID)
	}

	details := model.VideoDetails{
		ID:           ytID,
		Title:        md.Title,
		ThumbnailURL: model.ThumbnailURL(ytID),
		ChannelTitle: md.Author,
		Duration:     md.Duration,
	}
	if details.Title == "" {
		details.Title = model.FallbackTitle
	}
	if details.ChannelTitle == "" {
		details.ChannelTitle = model.FallbackChannel
	}

	return details
}
