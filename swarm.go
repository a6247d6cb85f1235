package swarm

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ErrNegativeWidth indicates that a negative concurrency width was requested.
// A width of zero is legal and results in an empty run.
var ErrNegativeWidth = errors.New("concurrency width must be non-negative")

// Callable is a unit of work executed by each task in a swarm. It receives a
// shared resource handle (for example a provider client) and returns either a
// result value or an error. A Callable must be safe to invoke concurrently:
// invocations share nothing but the resource handle itself.
//
// The context passed to Run is forwarded to every invocation, but the
// executor never cancels in-flight work on its own; honoring ctx is up to
// the callable.
type Callable[R, T any] func(ctx context.Context, resource R) (T, error)

// Outcome is the result of a single task. Task is the 1-based launch index,
// matching the "task" field of the corresponding log entry. Exactly one of
// Value and Err is meaningful: Value when Err is nil, Err otherwise.
type Outcome[T any] struct {
	Task  int
	Value T
	Err   error
}

// Run executes call n times concurrently against the shared resource and
// returns all n outcomes. Every outcome, success or error, is appended to the
// file at output as one JSON line before it is handed back to the caller. The
// file is truncated first, so a fresh run never appends to stale entries.
//
// Outcomes are returned in completion order, which is nondeterministic and
// may differ between runs with identical inputs. Callers that need launch
// order can sort by Outcome.Task.
//
// A failing call is not an error of the run: it becomes a normal Outcome with
// Err set and is logged with status "error". Run itself fails only on
// infrastructure problems: the output file cannot be created, a log entry
// cannot be written, or n is negative. In that case no partial outcome slice
// is returned.
func Run[R, T any](ctx context.Context, call Callable[R, T], n int, resource R, output string) ([]Outcome[T], error) {
	sink, err := NewSink(output)
	if err != nil {
		return nil, fmt.Errorf("failed to open output sink: %w", err)
	}
	defer sink.Close()

	return RunWithSink(ctx, call, n, resource, sink)
}

// RunWithSink is Run with a caller-managed sink. The sink is shared by all
// tasks and is not closed when the run finishes.
func RunWithSink[R, T any](ctx context.Context, call Callable[R, T], n int, resource R, sink *Sink) ([]Outcome[T], error) {
	if n < 0 {
		return nil, ErrNegativeWidth
	}

	log.Info().Int("tasks", n).Str("output", sink.Path()).Msg("Launching swarm")

	// Capacity n means no task ever blocks waiting for the collector.
	outcomes := make(chan Outcome[T], n)

	var g errgroup.Group
	for i := 0; i < n; i++ {
		task := i + 1
		g.Go(func() error {
			value, err := call(ctx, resource)

			// The log entry must be durable before the outcome is visible to
			// the caller.
			if werr := sink.Append(outcomeEntry(task, value, err)); werr != nil {
				return fmt.Errorf("failed to log outcome of task %d: %w", task, werr)
			}

			outcomes <- Outcome[T]{Task: task, Value: value, Err: err}
			return nil
		})
	}

	// Close the channel once every producer has finished; closing signals
	// "no more producers", not "already drained".
	wait := make(chan error, 1)
	go func() {
		wait <- g.Wait()
		close(outcomes)
	}()

	results := make([]Outcome[T], 0, n)
	for outcome := range outcomes {
		results = append(results, outcome)
	}

	if err := <-wait; err != nil {
		return nil, err
	}

	failed := 0
	for _, outcome := range results {
		if outcome.Err != nil {
			failed++
		}
	}
	log.Info().Int("tasks", n).Int("succeeded", n-failed).Int("failed", failed).Msg("Swarm completed")

	return results, nil
}
