package fetch

import (
	"context"
	"fmt"
	"time"

	"ewintr.nl/videonotes/model"
	"github.com/jonboulle/clockwork"
)

// PlaceholderTranscript stands in for a real transcript provider. It waits
// a fixed delay and returns a fixed text naming the video.
type PlaceholderTranscript struct {
	delay time.Duration
	clock clockwork.Clock
}

func NewPlaceholderTranscript(delay time.Duration, clock clockwork.Clock) *PlaceholderTranscript {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &PlaceholderTranscript{
		delay: delay,
		clock: clock,
	}
}

func (p *PlaceholderTranscript) FetchTranscript(ctx context.Context, ytID model.YoutubeVideoID) (string, error) {
	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("could not fetch transcript for %s: %w", ytID, ctx.Err())
		case <-p.clock.After(p.delay):
		}
	}

	return fmt.Sprintf("This is a simulated transcript. In a real application, you would use a YouTube transcript API service to fetch the actual transcript for video ID: %s", ytID), nil
}
