package model

type Status string

const (
	StatusIdle        Status = "idle"
	StatusValidating  Status = "validating"
	StatusExtracting  Status = "extracting"
	StatusAnalyzing   Status = "analyzing"
	StatusSummarizing Status = "summarizing"
	StatusFormatting  Status = "formatting"
	StatusCompleted   Status = "completed"
	StatusError       Status = "error"
)

var stageOrder = map[Status]int{
	StatusIdle:        0,
	StatusValidating:  1,
	StatusExtracting:  2,
	StatusAnalyzing:   3,
	StatusSummarizing: 4,
	StatusFormatting:  5,
	StatusCompleted:   6,
	StatusError:       7,
}

var statusMessages = map[Status]string{
	StatusIdle:        "Ready to process",
	StatusValidating:  "Validating video URL...",
	StatusExtracting:  "Extracting video information...",
	StatusAnalyzing:   "Analyzing video content...",
	StatusSummarizing: "Generating summary and notes...",
	StatusFormatting:  "Formatting your results...",
	StatusCompleted:   "Processing complete!",
	StatusError:       "An error occurred",
}

func (s Status) Valid() bool {
	_, ok := stageOrder[s]
	return ok
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// Precedes reports whether a transition from s to next moves forward. The
// error status may follow any non-terminal status.
func (s Status) Precedes(next Status) bool {
	if s.Terminal() || !next.Valid() {
		return false
	}
	if next == StatusError {
		return true
	}
	return stageOrder[s] < stageOrder[next]
}

func (s Status) Message() string {
	return statusMessages[s]
}
