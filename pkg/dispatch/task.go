package dispatch

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/ib-77/either/internal/logging"
)

// Task is one unit of work handed to a Dispatcher.
type Task func(ctx context.Context) (string, error)

// BlockingIO simulates a legacy call that parks its goroutine for a random
// duration in [min, max) and never looks at ctx.
func BlockingIO(id int, min, max time.Duration) Task {
	return func(ctx context.Context) (string, error) {
		sleep := min
		if max > min {
			sleep += rand.N(max - min)
		}

		log := logging.FromContext(ctx).With(logging.Int(logging.KeyTask, id))
		log.Debug("starting blocking io", logging.Duration(logging.KeySleep, sleep))
		time.Sleep(sleep)
		log.Debug("finished blocking io")

		return fmt.Sprintf("task %d done after %s", id, sleep), nil
	}
}

// Delay waits d but gives up as soon as ctx ends.
func Delay(id int, d time.Duration) Task {
	return func(ctx context.Context) (string, error) {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("task %d: %w: %w", id, ErrCancelled, ctx.Err())
		case <-timer.C:
			return fmt.Sprintf("task %d done after %s", id, d), nil
		}
	}
}

// Tasks builds n tasks with newTask, numbering them from 1.
func Tasks(n int, newTask func(id int) Task) []Task {
	tasks := make([]Task, max(n, 0))
	for i := range tasks {
		tasks[i] = newTask(i + 1)
	}
	return tasks
}
