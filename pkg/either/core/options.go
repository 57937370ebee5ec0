package core

import "context"

type optionKey string

const (
	processOptionKey optionKey = "process_options"
	workerOptionKey  optionKey = "worker_options"
)

type WorkerOptions struct {
	// MaxCount is the number of lines a stage runs; values below 1 fall back
	// to the caller's default.
	MaxCount int
}

type ProcessOptions struct {
	// ProcessRemaining reports values left unprocessed on cancellation
	// instead of dropping them.
	ProcessRemaining bool
}

func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, processOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, WorkerOptions{MaxCount: maxWorkers})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(workerOptionKey).(WorkerOptions)
	if ok && options.MaxCount > 0 {
		return options.MaxCount
	}
	return defaultMaxWorkers
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	options, ok := ctx.Value(processOptionKey).(ProcessOptions)
	if ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}
