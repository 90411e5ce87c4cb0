package process

import (
	"context"
	"errors"

	"ewintr.nl/videonotes/model"
)

var errNoKeyPoints = errors.New("no key points in generated content")

type GenerationRequest struct {
	DetailLevel model.DetailLevel
	Video       model.VideoDetails
	Transcript  string
}

type Content struct {
	Summary   string
	KeyPoints []string
	Notes     string
}

// Generator produces summary, key points and notes for a video.
type Generator interface {
	Name() string
	Generate(ctx context.Context, req GenerationRequest) (Content, error)
}
