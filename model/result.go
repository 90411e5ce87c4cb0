package model

import (
	"time"

	"github.com/google/uuid"
)

type Result struct {
	VideoDetails VideoDetails `json:"video_details"`
	Summary      string       `json:"summary"`
	KeyPoints    []string     `json:"key_points"`
	Notes        string       `json:"notes"`
	Timestamp    time.Time    `json:"timestamp"`
}

// Run is a journal entry for one finished pipeline run. It holds no generated
// content.
type Run struct {
	ID          uuid.UUID   `json:"id"`
	SessionID   uuid.UUID   `json:"session_id"`
	VideoURL    string      `json:"video_url"`
	DetailLevel DetailLevel `json:"detail_level"`
	Status      Status      `json:"status"`
	Error       string      `json:"error,omitempty"`
	StartedAt   time.Time   `json:"started_at"`
	FinishedAt  time.Time   `json:"finished_at"`
}
