package runner

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KongYongGun/chapterfind/internal/detect"
)

// Task is one detection input handed to the pool, typically a file's
// decoded text keyed by its path.
type Task struct {
	Name string
	Text string
}

// TaskResult pairs a task with its final detection result. Err is set
// only when the pool's runner config enables StrictErrors.
type TaskResult struct {
	Name   string
	Result detect.Result
	Err    error
}

// Pool runs independent detection runs across a fixed set of worker
// goroutines pulling from a single shared queue. Each task gets a fresh
// Runner, so runs share no mutable state.
type Pool struct {
	cfg     Config
	logger  *slog.Logger
	workers int
}

// PoolConfig configures a detection pool.
type PoolConfig struct {
	// Runner is the per-run configuration applied to every task.
	Runner Config
	// Workers is the number of concurrent runs (default 1).
	Workers int
	Logger  *slog.Logger
}

// NewPool creates a detection pool.
func NewPool(cfg PoolConfig) *Pool {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		cfg:     cfg.Runner,
		logger:  logger.With("pool", "detect", "workers", workers),
		workers: workers,
	}
}

// Run executes all tasks and returns results in task order. It blocks
// until every run has finished or the context is cancelled; cancelled
// runs report whatever they had accepted when the cancellation was
// observed.
func (p *Pool) Run(ctx context.Context, tasks []Task) []TaskResult {
	results := make([]TaskResult, len(tasks))
	queue := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				results[idx] = p.runTask(ctx, tasks[idx])
			}
		}()
	}

	for i := range tasks {
		queue <- i
	}
	close(queue)
	wg.Wait()

	return results
}

// runTask executes a single detection run and collects its streamed
// candidates into a Result.
func (p *Pool) runTask(ctx context.Context, task Task) TaskResult {
	cfg := p.cfg
	cfg.Logger = p.logger.With("task", task.Name)

	r := New(cfg)
	events, err := r.Start(ctx, task.Text)
	if err != nil {
		// Fresh runners are always idle; reaching this is a bug.
		return TaskResult{Name: task.Name, Err: err}
	}

	res := TaskResult{Name: task.Name}
	for ev := range events {
		switch ev.Type {
		case EventCandidate:
			res.Result.Candidates = append(res.Result.Candidates, *ev.Candidate)
		case EventFinished:
			res.Result.Total = ev.Total
			res.Err = ev.Err
		}
	}
	return res
}
