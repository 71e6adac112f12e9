package cloud

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Op identifies a dispatched call.
type Op int

const (
	OpLoadHighScore Op = iota
	OpSaveHighScore
	OpSubmitEntry
	OpLeaderboard
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpLoadHighScore:
		return "load_high_score"
	case OpSaveHighScore:
		return "save_high_score"
	case OpSubmitEntry:
		return "submit_entry"
	case OpLeaderboard:
		return "leaderboard"
	default:
		return "unknown"
	}
}

// Result reports a completed call. HighScore is set for OpLoadHighScore and
// Entries for OpLeaderboard.
type Result struct {
	Op        Op
	PlayerID  string
	HighScore int
	Entries   []Entry
	Err       error
}

type task struct {
	op  Op
	run func(ctx context.Context) Result
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithQueueSize sets how many calls may wait before new ones are dropped.
func WithQueueSize(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.queueSize = n
		}
	}
}

// WithTimeout sets the per-call deadline.
func WithTimeout(t time.Duration) Option {
	return func(d *Dispatcher) {
		if t > 0 {
			d.timeout = t
		}
	}
}

// Dispatcher runs cloud calls on a background goroutine. Calls never block
// the caller: a full queue drops the call with a warning. Failures are
// logged and not retried.
type Dispatcher struct {
	svc       Service
	logger    *log.Logger
	queueSize int
	timeout   time.Duration

	tasks   chan task
	results chan Result
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher starts a dispatcher for svc.
func NewDispatcher(svc Service, logger *log.Logger, opts ...Option) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	d := &Dispatcher{
		svc:       svc,
		logger:    logger,
		queueSize: 16,
		timeout:   5 * time.Second,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.tasks = make(chan task, d.queueSize)
	d.results = make(chan Result, d.queueSize)

	go d.loop()
	return d
}

func (d *Dispatcher) loop() {
	defer close(d.done)
	for t := range d.tasks {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		res := t.run(ctx)
		cancel()

		res.Op = t.op
		if res.Err != nil {
			d.logger.Warn("cloud call failed", "op", t.op, "error", res.Err)
		} else {
			d.logger.Debug("cloud call done", "op", t.op)
		}

		select {
		case d.results <- res:
		default:
			d.logger.Debug("cloud result dropped", "op", t.op)
		}
	}
}

// Results delivers completions. Reading it is optional.
func (d *Dispatcher) Results() <-chan Result {
	return d.results
}

// enqueue schedules t and reports whether it was accepted.
func (d *Dispatcher) enqueue(t task) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("cloud call after close", "op", t.op)
		return ErrUnavailable
	}

	select {
	case d.tasks <- t:
		return nil
	default:
		d.logger.Warn("cloud queue full, dropping call", "op", t.op)
		return ErrQueueFull
	}
}

// LoadHighScore fetches the player's remote best score.
func (d *Dispatcher) LoadHighScore(playerID string) {
	d.enqueue(task{op: OpLoadHighScore, run: func(ctx context.Context) Result { //nolint:errcheck
		score, err := d.svc.LoadHighScore(ctx, playerID)
		return Result{PlayerID: playerID, HighScore: score, Err: err}
	}})
}

// SaveHighScore pushes the player's best score.
func (d *Dispatcher) SaveHighScore(playerID string, score int) {
	d.enqueue(task{op: OpSaveHighScore, run: func(ctx context.Context) Result { //nolint:errcheck
		return Result{PlayerID: playerID, Err: d.svc.SaveHighScore(ctx, playerID, score)}
	}})
}

// SubmitEntry adds a leaderboard entry.
func (d *Dispatcher) SubmitEntry(playerID, initials string, score int) {
	e := Entry{PlayerID: playerID, Initials: SanitizeInitials(initials), Score: score}
	d.enqueue(task{op: OpSubmitEntry, run: func(ctx context.Context) Result { //nolint:errcheck
		return Result{PlayerID: playerID, Err: d.svc.SubmitEntry(ctx, e)}
	}})
}

// FetchLeaderboard loads the top entries.
func (d *Dispatcher) FetchLeaderboard(limit int) {
	d.enqueue(task{op: OpLeaderboard, run: func(ctx context.Context) Result { //nolint:errcheck
		entries, err := d.svc.Leaderboard(ctx, limit)
		return Result{Entries: entries, Err: err}
	}})
}

// Done is closed once the dispatcher has stopped and drained its queue.
func (d *Dispatcher) Done() <-chan struct{} {
	return d.done
}

// Close stops accepting calls and waits for queued ones to finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.tasks)
	d.mu.Unlock()

	<-d.done
}
