package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/zeebo/errs"

	"github.com/ib-77/either/internal/logging"
	"github.com/ib-77/either/pkg/either"
	"github.com/ib-77/either/pkg/either/core"
	"github.com/ib-77/either/pkg/either/lite"
)

const DefaultPoolSize = 64

var (
	// Error is the class of task failures raised by the dispatchers.
	Error = errs.Class("dispatch")

	// ErrCancelled marks tasks that did not complete before the context ended.
	ErrCancelled = errors.New("task cancelled")
)

type Dispatcher interface {
	Name() string
	// Dispatch runs every task and returns one result per task in completion
	// order. Tasks dropped by cancellation are missing unless process
	// remaining is enabled on ctx, which it is by default.
	Dispatch(ctx context.Context, tasks []Task) []either.Result[string]
}

// Pool runs at most Size tasks at once.
type Pool struct {
	Size int
}

func (p Pool) size() int {
	if p.Size < 1 {
		return DefaultPoolSize
	}
	return p.Size
}

func (p Pool) Name() string {
	return fmt.Sprintf("pool(%d)", p.size())
}

func (p Pool) Dispatch(ctx context.Context, tasks []Task) []either.Result[string] {
	return run(ctx, tasks, p.size())
}

// PerTask gives every task its own goroutine.
type PerTask struct{}

func (PerTask) Name() string {
	return "per-task"
}

func (PerTask) Dispatch(ctx context.Context, tasks []Task) []either.Result[string] {
	return run(ctx, tasks, len(tasks))
}

func run(ctx context.Context, tasks []Task, lines int) []either.Result[string] {
	if len(tasks) == 0 {
		return []either.Result[string]{}
	}

	handlers := core.CancellationHandlers[Task, string]{
		OnCancel:            cancelRemaining,
		OnCancelUnprocessed: cancelUnprocessed,
		OnCancelProcessed:   keepProcessed,
	}

	return core.Drain(lite.TurnoutWithHandlers(ctx, queue(tasks), lite.Try(execute), handlers, nil, lines))
}

// queue holds every task up front so tasks never started can still be
// reported after cancellation.
func queue(tasks []Task) <-chan either.Result[Task] {
	in := make(chan either.Result[Task], len(tasks))
	for _, t := range tasks {
		in <- either.Right[error](t)
	}
	close(in)
	return in
}

func execute(ctx context.Context, task Task) (string, error) {
	out, err := task(ctx)
	if err != nil && !errors.Is(err, ErrCancelled) {
		return "", Error.Wrap(err)
	}
	return out, err
}

func cancelRemaining(ctx context.Context, inputCh <-chan either.Result[Task], outCh chan<- either.Result[string]) {
	if !core.IsProcessRemainingEnabled(ctx, true) {
		return
	}
	for range inputCh {
		outCh <- either.Left[error, string](ErrCancelled)
	}
}

func cancelUnprocessed(ctx context.Context, _ either.Result[Task], outCh chan<- either.Result[string]) {
	if core.IsProcessRemainingEnabled(ctx, true) {
		outCh <- either.Left[error, string](ErrCancelled)
	}
}

func keepProcessed(ctx context.Context, _ either.Result[Task], processed either.Result[string], outCh chan<- either.Result[string]) {
	if core.IsProcessRemainingEnabled(ctx, true) {
		outCh <- processed
	}
}

// Cancelled reports whether r failed because its task was cancelled.
func Cancelled(r either.Result[string]) bool {
	err, ok := r.GetLeft()
	return ok && errors.Is(err, ErrCancelled)
}

type Report struct {
	RunID      string
	Dispatcher string
	Tasks      int
	Succeeded  int
	Failed     int
	Cancelled  int
	Elapsed    time.Duration
	Results    []either.Result[string]
}

// Measure runs tasks on d and reports how long the whole batch took.
func Measure(ctx context.Context, d Dispatcher, tasks []Task) Report {
	report := Report{
		RunID:      gonanoid.Must(12),
		Dispatcher: d.Name(),
		Tasks:      len(tasks),
	}

	log := logging.FromContext(ctx).With(
		logging.String(logging.KeyRun, report.RunID),
		logging.String(logging.KeyDispatcher, report.Dispatcher),
	)
	ctx = log.WithContext(ctx)

	start := time.Now()
	report.Results = d.Dispatch(ctx, tasks)
	report.Elapsed = time.Since(start)

	for _, r := range report.Results {
		switch {
		case r.IsRight():
			report.Succeeded++
		case Cancelled(r):
			report.Cancelled++
			report.Failed++
		default:
			report.Failed++
		}
	}

	log.Info("dispatch finished",
		logging.Int("tasks", report.Tasks),
		logging.Int("succeeded", report.Succeeded),
		logging.Int("failed", report.Failed),
		logging.Int("cancelled", report.Cancelled),
		logging.Duration(logging.KeyElapsed, report.Elapsed),
	)

	return report
}
