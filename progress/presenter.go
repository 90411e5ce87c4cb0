// Package progress mirrors a pipeline run for display. It holds the current
// status and a progress percentage, and animates the percentage between
// status updates with a decaying interpolation timer.
package progress

import (
	"math"
	"sync"
	"time"

	"ewintr.nl/videonotes/model"
	"github.com/jonboulle/clockwork"
)

const (
	DefaultInterval    = 300 * time.Millisecond
	DefaultNoticeDelay = 5 * time.Second

	// Ceiling is the highest progress the interpolation timer may reach.
	// Only the completed status moves progress past it.
	Ceiling = 95.0
)

var floors = map[model.Status]float64{
	model.StatusValidating:  10,
	model.StatusExtracting:  20,
	model.StatusAnalyzing:   40,
	model.StatusSummarizing: 60,
	model.StatusFormatting:  80,
	model.StatusCompleted:   100,
}

type State struct {
	Status          model.Status `json:"status"`
	Progress        float64      `json:"progress"`
	StillProcessing bool         `json:"still_processing"`
}

type Option func(*Presenter)

func WithClock(clock clockwork.Clock) Option {
	return func(p *Presenter) { p.clock = clock }
}

func WithInterval(d time.Duration) Option {
	return func(p *Presenter) { p.interval = d }
}

func WithNoticeDelay(d time.Duration) Option {
	return func(p *Presenter) { p.noticeDelay = d }
}

// WithOnChange registers a callback for state changes. Calls are serialized
// and always carry the latest state. The callback may call State but must not
// call the methods that change it.
func WithOnChange(f func(State)) Option {
	return func(p *Presenter) { p.onChange = f }
}

// Presenter is safe for concurrent use. It never returns errors.
type Presenter struct {
	clock       clockwork.Clock
	interval    time.Duration
	noticeDelay time.Duration
	onChange    func(State)

	notifyMu sync.Mutex

	mu     sync.Mutex
	state  State
	interp *task
	notice *task
	closed bool
}

func New(opts ...Option) *Presenter {
	p := &Presenter{
		clock:       clockwork.NewRealClock(),
		interval:    DefaultInterval,
		noticeDelay: DefaultNoticeDelay,
		state:       State{Status: model.StatusIdle},
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Presenter) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

// Start begins a new request: progress goes back to 0 and both timers are
// rearmed.
func (p *Presenter) Start() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	stale := p.detach()
	p.state = State{Status: model.StatusValidating}

	// the timers are created here, not in their goroutines, so that a fake
	// clock sees them as soon as Start returns
	p.interp = newTask()
	go p.interpolate(p.interp, p.clock.NewTicker(p.interval))
	p.notice = newTask()
	go p.remind(p.notice, p.clock.NewTimer(p.noticeDelay))
	p.mu.Unlock()

	stopAll(stale)
	p.changed()
}

// OnStatus applies a status update from the pipeline. Backward transitions
// and anything after a terminal status are ignored.
func (p *Presenter) OnStatus(status model.Status) {
	p.mu.Lock()
	if p.closed || !p.accepts(status) {
		p.mu.Unlock()
		return
	}
	p.state.Status = status
	if floor, ok := floors[status]; ok && floor > p.state.Progress {
		p.state.Progress = floor
	}
	var stale []*task
	if status.Terminal() {
		stale = p.detach()
		p.state.StillProcessing = false
	}
	p.mu.Unlock()

	stopAll(stale)
	p.changed()
}

// Reset returns to idle with zero progress.
func (p *Presenter) Reset() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	stale := p.detach()
	p.state = State{Status: model.StatusIdle}
	p.mu.Unlock()

	stopAll(stale)
	p.changed()
}

// Close tears the presenter down. Both timers are stopped before Close
// returns and every later call is ignored.
func (p *Presenter) Close() {
	p.mu.Lock()
	p.closed = true
	stale := p.detach()
	p.mu.Unlock()

	stopAll(stale)
}

// accepts allows forward transitions and a repeat of the current status, as
// Start already moved to validating before the pipeline reports it.
func (p *Presenter) accepts(status model.Status) bool {
	if status == p.state.Status {
		return !status.Terminal()
	}
	return p.state.Status.Precedes(status)
}

// step advances progress by one interpolation tick. It reports false when
// the timer should stop.
func (p *Presenter) step(t *task) bool {
	p.mu.Lock()
	if p.interp != t {
		p.mu.Unlock()
		return false
	}
	if p.state.Progress >= Ceiling {
		p.interp = nil
		p.mu.Unlock()
		return false
	}
	p.state.Progress = nextProgress(p.state.Progress)
	more := p.state.Progress < Ceiling
	if !more {
		p.interp = nil
	}
	p.mu.Unlock()

	p.changed()
	return more
}

func (p *Presenter) fireNotice(t *task) {
	p.mu.Lock()
	if p.notice != t {
		p.mu.Unlock()
		return
	}
	p.notice = nil
	p.state.StillProcessing = true
	p.mu.Unlock()

	p.changed()
}

func (p *Presenter) interpolate(t *task, ticker clockwork.Ticker) {
	defer close(t.done)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.Chan():
			if !p.step(t) {
				return
			}
		}
	}
}

func (p *Presenter) remind(t *task, timer clockwork.Timer) {
	defer close(t.done)
	defer timer.Stop()

	select {
	case <-t.stop:
	case <-timer.Chan():
		p.fireNotice(t)
	}
}

// detach takes both timers off the presenter. The caller must hold the lock
// and stop the returned tasks after releasing it.
func (p *Presenter) detach() []*task {
	var stale []*task
	if p.interp != nil {
		stale = append(stale, p.interp)
		p.interp = nil
	}
	if p.notice != nil {
		stale = append(stale, p.notice)
		p.notice = nil
	}
	return stale
}

func (p *Presenter) changed() {
	if p.onChange == nil {
		return
	}
	p.notifyMu.Lock()
	defer p.notifyMu.Unlock()

	p.onChange(p.State())
}

// nextProgress slows down as it approaches the ceiling.
func nextProgress(current float64) float64 {
	increment := math.Max(0.5, 5*(1-current/100))
	return math.Min(Ceiling, current+increment)
}

type task struct {
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func newTask() *task {
	return &task{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// cancel stops the task goroutine and waits for it to exit.
func (t *task) cancel() {
	t.stopOnce.Do(func() { close(t.stop) })
	<-t.done
}

func stopAll(tasks []*task) {
	for _, t := range tasks {
		t.cancel()
	}
}
