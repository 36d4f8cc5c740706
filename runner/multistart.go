// Package runner executes solves: parallel multistart over an optimizer
// factory, with optional job tracking for long-running solves.
package runner

import (
	"context"
	"errors"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/structfit/solver"
)

// ErrNoStarts indicates a multistart configured with zero starts.
var ErrNoStarts = errors.New("runner: multistart needs at least one start")

// ErrNoFactory indicates a multistart without an optimizer factory.
var ErrNoFactory = errors.New("runner: multistart needs an optimizer factory")

// Multistart runs the same problem from several independently seeded
// optimizers in parallel and keeps the best result. Population optimizers
// are stochastic; restarting with different seeds is the standard hedge
// against a bad basin.
type Multistart struct {
	// Starts is the number of independent runs.
	Starts int
	// New builds the optimizer for one start; the seed differs per start.
	New func(seed int64) solver.Optimizer
	// Seed is the base random seed; start i uses Seed+i.
	Seed int64
	// Job, when set, receives state transitions and per-start progress.
	Job *Job
}

// Run executes all starts and returns the lowest-cost result. The context
// cancels pending starts; finished starts still count.
func (m Multistart) Run(ctx context.Context, p solver.Problem) (solver.Result, error) {
	if m.Starts < 1 {
		return solver.Result{}, ErrNoStarts
	}
	if m.New == nil {
		return solver.Result{}, ErrNoFactory
	}
	if err := p.Validate(); err != nil {
		return solver.Result{}, err
	}

	m.Job.transition(StateRunning)

	var (
		mu   sync.Mutex
		best = solver.Result{Cost: math.Inf(1)}
		done int
	)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < m.Starts; i++ {
		seed := m.Seed + int64(i)
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			res, err := m.New(seed).Run(p)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			done++
			if res.Cost < best.Cost {
				best = res
			}
			m.Job.progressUpdate(done, best.Cost)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			m.Job.fail(err, StateCancelled)
		} else {
			m.Job.fail(err, StateFailed)
		}
		return solver.Result{}, err
	}

	m.Job.transition(StateDone)
	return best, nil
}
