// Package runner executes detection runs as cancellable background
// workers that stream candidate, progress, and completion events to the
// caller without blocking it.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/KongYongGun/chapterfind/internal/detect"
)

// State is the lifecycle state of a Runner. Terminal states are final;
// a new run requires a fresh Runner.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateCancelled State = "cancelled"
	StateFailed    State = "failed"
)

// ErrNotIdle is returned when Start is called on a used Runner.
var ErrNotIdle = errors.New("runner is not idle")

// Config configures a detection run.
type Config struct {
	// Patterns is the ordered, compiled chapter regex list. May be
	// empty, in which case only the heuristic scorers contribute.
	Patterns []detect.Pattern

	// Lexicon supplies the scorer vocabulary. Defaults to
	// detect.DefaultLexicon().
	Lexicon *detect.Lexicon

	// MinSpacing is the minimum line gap between accepted chapters.
	// Defaults to detect.MinSpacing.
	MinSpacing int

	// StrictErrors surfaces internal failures on the finished event.
	// When false (the default) a failed run reports zero found, which
	// is indistinguishable from an empty result.
	StrictErrors bool

	// EventBuffer sizes the event channel (default 64).
	EventBuffer int

	Logger *slog.Logger
}

// Runner executes one detection run. It is single-use: Idle until Start,
// then Running, then exactly one of Completed, Cancelled, or Failed.
type Runner struct {
	id     string
	cfg    Config
	logger *slog.Logger

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc

	events chan Event
}

// New creates an idle Runner.
func New(cfg Config) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Lexicon == nil {
		cfg.Lexicon = detect.DefaultLexicon()
	}
	if cfg.MinSpacing <= 0 {
		cfg.MinSpacing = detect.MinSpacing
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = 64
	}
	id := uuid.New().String()
	return &Runner{
		id:     id,
		cfg:    cfg,
		logger: logger.With("run_id", id),
		state:  StateIdle,
	}
}

// ID returns the run identifier.
func (r *Runner) ID() string { return r.id }

// State returns the current lifecycle state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Stop requests cooperative cancellation. The run observes the request
// at the next line boundary, stops scanning, emits the terminal event,
// and settles in StateCancelled. Stop never blocks and is safe to call
// in any state.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Start launches the detection run in a background goroutine and returns
// the event channel. The channel is closed after the finished event.
// Start fails if the runner has already been used.
func (r *Runner) Start(ctx context.Context, text string) (<-chan Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateIdle {
		return nil, fmt.Errorf("%w: %s", ErrNotIdle, r.state)
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.state = StateRunning
	r.cancel = cancel
	r.events = make(chan Event, r.cfg.EventBuffer)

	go r.run(runCtx, text)
	return r.events, nil
}

// run is the worker goroutine for one detection run. All mutation is
// confined to run-local structures; concurrent runs share nothing.
func (r *Runner) run(ctx context.Context, text string) {
	defer close(r.events)

	emitted := 0
	err := r.scan(ctx, text, &emitted)

	switch {
	case err == nil:
		r.setState(StateCompleted)
		r.logger.Info("detection completed", "found", emitted)
		r.events <- Event{Type: EventFinished, Total: emitted}

	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		r.setState(StateCancelled)
		r.logger.Info("detection cancelled", "accepted", emitted)
		r.events <- Event{Type: EventFinished, Total: emitted}

	default:
		r.setState(StateFailed)
		r.logger.Error("detection failed", "error", err)
		if r.cfg.StrictErrors {
			r.events <- Event{Type: EventFinished, Total: 0, Err: err}
		} else {
			// Degrade to zero found. Callers cannot tell this
			// apart from a legitimately empty result, which is
			// why StrictErrors exists.
			r.events <- Event{Type: EventFinished, Total: 0}
		}
	}
}

// scan performs the full pass: split, detect, merge, emit. The emitted
// counter is updated as accepted candidates stream out so cancellation
// mid-emission still reports an accurate count.
func (r *Runner) scan(ctx context.Context, text string, emitted *int) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("detection panic: %v", p)
		}
	}()

	lines := detect.SplitLines(text)
	if len(lines) == 0 {
		r.logger.Warn("input text is empty")
		r.events <- Event{Type: EventProgress, Percent: 100}
		return nil
	}

	detectors := []detect.Detector{
		detect.NewPatternDetector(detect.PatternDetectorConfig{
			Patterns: r.cfg.Patterns,
			Progress: r.progressFunc(),
			Logger:   r.logger,
		}),
		detect.NewStructuralScorer(detect.StructuralScorerConfig{
			Lexicon: r.cfg.Lexicon,
			Logger:  r.logger,
		}),
		detect.NewSemanticScorer(detect.SemanticScorerConfig{
			Lexicon: r.cfg.Lexicon,
			Logger:  r.logger,
		}),
	}

	var union []detect.Candidate
	for _, d := range detectors {
		found, err := d.Detect(ctx, lines)
		if err != nil {
			return err
		}
		r.logger.Debug("detector finished", "detector", d.Name(), "candidates", len(found))
		union = append(union, found...)
	}

	result := detect.Merge(union, r.cfg.MinSpacing)
	for i := range result.Candidates {
		if err := ctx.Err(); err != nil {
			return err
		}
		c := result.Candidates[i]
		r.events <- Event{Type: EventCandidate, Candidate: &c}
		*emitted++
	}
	return nil
}

// progressFunc returns a callback that forwards monotonically
// non-decreasing percent values as events.
func (r *Runner) progressFunc() func(int) {
	last := -1
	return func(percent int) {
		if percent <= last {
			return
		}
		last = percent
		r.events <- Event{Type: EventProgress, Percent: percent}
	}
}

func (r *Runner) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}
