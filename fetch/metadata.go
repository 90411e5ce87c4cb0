package fetch

import (
	"context"
	"time"

	"ewintr.nl/videonotes/model"
)

type Metadata struct {
	Title    string
	Author   string
	Duration string
}

type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, id model.YoutubeVideoID) (Metadata, error)
}

type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, id model.YoutubeVideoID) (string, error)
}

// WithTimeout bounds every lookup of f to d.
func WithTimeout(f MetadataFetcher, d time.Duration) MetadataFetcher {
	return timeoutFetcher{fetcher: f, timeout: d}
}

type timeoutFetcher struct {
	fetcher MetadataFetcher
	timeout time.Duration
}

func (t timeoutFetcher) FetchMetadata(ctx context.Context, id model.YoutubeVideoID) (Metadata, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	return t.fetcher.FetchMetadata(ctx, id)
}
