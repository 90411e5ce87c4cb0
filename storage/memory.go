package storage

import (
	"sort"
	"sync"

	"ewintr.nl/videonotes/model"
)

// Memory keeps the journal for the lifetime of the process. It is used when
// no database is configured.
type Memory struct {
	mu   sync.RWMutex
	runs map[string]model.Run
}

func NewMemory() *Memory {
	return &Memory{
		runs: make(map[string]model.Run),
	}
}

func (m *Memory) Save(run *model.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs[run.ID.String()] = *run

	return nil
}

func (m *Memory) Recent(limit int) ([]model.Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	runs := make([]model.Run, 0, len(m.runs))
	for _, run := range m.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].FinishedAt.After(runs[j].FinishedAt)
	})
	if limit >= 0 && len(runs) > limit {
		runs = runs[:limit]
	}

	return runs, nil
}
