package storage

import (
	"ewintr.nl/videonotes/model"
)

// RunRepository is the run journal. It records the outcome of each finished
// pipeline run, never the generated content.
type RunRepository interface {
	Save(run *model.Run) error
	Recent(limit int) ([]model.Run, error)
}
