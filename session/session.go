// Package session binds a progress presenter to pipeline runs. A Session is
// one UI context: it runs at most one request at a time and keeps the last
// result until the next submit or a reset.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"ewintr.nl/videonotes/model"
	"ewintr.nl/videonotes/process"
	"ewintr.nl/videonotes/progress"
	"ewintr.nl/videonotes/storage"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/exp/slog"
)

const noticeMessage = "This is taking longer than usual, still processing..."

var (
	ErrBusy   = errors.New("a request is already being processed")
	ErrClosed = errors.New("session is closed")
)

// Runner executes one request and reports its stages to the listener.
type Runner interface {
	Run(ctx context.Context, req model.Request, l process.Listener) (*model.Result, error)
}

type View struct {
	ID uuid.UUID `json:"id"`
	progress.State
	Message string        `json:"message"`
	Notice  string        `json:"notice,omitempty"`
	Busy    bool          `json:"busy"`
	Result  *model.Result `json:"result,omitempty"`
	Error   string        `json:"error,omitempty"`
}

type Session struct {
	ID        uuid.UUID
	runner    Runner
	presenter *progress.Presenter
	journal   storage.RunRepository
	clock     clockwork.Clock
	logger    *slog.Logger

	mu     sync.Mutex
	closed bool
	busy   bool
	done   chan struct{}
	result *model.Result
	err    error
}

// New creates a session. The journal may be nil.
func New(runner Runner, presenter *progress.Presenter, journal storage.RunRepository, clock clockwork.Clock, logger *slog.Logger) *Session {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	id := uuid.New()

	return &Session{
		ID:        id,
		runner:    runner,
		presenter: presenter,
		journal:   journal,
		clock:     clock,
		logger:    logger.With(slog.String("session", id.String())),
	}
}

// Submit starts processing req in the background. The previous result is
// dropped.
func (s *Session) Submit(req model.Request) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true
	s.result, s.err = nil, nil
	done := make(chan struct{})
	s.done = done
	s.mu.Unlock()

	s.presenter.Start()
	go s.run(req, done)

	return nil
}

// run is not tied to the session lifetime. After Close the run still
// finishes, but its outcome is dropped.
func (s *Session) run(req model.Request, done chan struct{}) {
	defer close(done)

	started := s.clock.Now()
	res, err := s.runner.Run(context.Background(), req, s.presenter)

	s.mu.Lock()
	s.busy = false
	closed := s.closed
	if !closed {
		s.result, s.err = res, err
	}
	s.mu.Unlock()

	if closed {
		s.logger.Info("discarded outcome of closed session")
		return
	}
	s.record(req, err, started)
}

func (s *Session) record(req model.Request, runErr error, started time.Time) {
	if s.journal == nil {
		return
	}
	run := &model.Run{
		ID:          uuid.New(),
		SessionID:   s.ID,
		VideoURL:    req.VideoURL,
		DetailLevel: req.DetailLevel.Normalize(),
		Status:      model.StatusCompleted,
		StartedAt:   started,
		FinishedAt:  s.clock.Now(),
	}
	if runErr != nil {
		run.Status = model.StatusError
		run.Error = runErr.Error()
	}
	if err := s.journal.Save(run); err != nil {
		s.logger.Error("failed to save run", slog.String("error", err.Error()))
	}
}

// Wait blocks until the current run has finished and returns its outcome.
// Without a run in flight it returns the last outcome right away.
func (s *Session) Wait(ctx context.Context) (*model.Result, error) {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}

	return s.result, s.err
}

// Reset clears the result and returns the presenter to idle.
func (s *Session) Reset() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.result, s.err = nil, nil
	s.mu.Unlock()

	s.presenter.Reset()

	return nil
}

// Close tears the session down. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.presenter.Close()
}

func (s *Session) View() View {
	state := s.presenter.State()

	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		ID:      s.ID,
		State:   state,
		Message: state.Status.Message(),
		Busy:    s.busy,
		Result:  s.result,
	}
	if s.err != nil {
		v.Error = s.err.Error()
	}
	if state.StillProcessing {
		v.Notice = noticeMessage
	}

	return v
}

// Result returns the last successful result, if any.
func (s *Session) Result() (*model.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.result, s.result != nil
}
