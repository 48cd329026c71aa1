// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package runner supervises an engine with a step budget and a deadline.
package runner

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ezrec/bfi/engine"
)

const (
	CHECK_INTERVAL = 1024 // Steps between context checks.
)

// Limits bounds a single Run. Zero values mean no limit.
type Limits struct {
	MaxSteps int           // Maximum steps per Run.
	Timeout  time.Duration // Wall clock limit per Run.
}

// Runner drives an engine, stopping it once a limit is exceeded.
type Runner struct {
	Verbose        bool // If set, enables verbose logging.
	*engine.Engine      // Reference to the supervised engine.
	Limits         Limits
}

// NewRunner wraps eng with limits.
func NewRunner(eng *engine.Engine, limits Limits) *Runner {
	return &Runner{
		Engine: eng,
		Limits: limits,
	}
}

// Run steps the engine until it completes, waits for input, stops, or a
// limit is hit. Exceeding a limit halts the engine with ErrStepLimit or
// the context error, leaving it in engine.STATUS_STOPPED.
func (run *Runner) Run(ctx context.Context) (state engine.State, err error) {
	run.Engine.Verbose = run.Verbose

	if run.Limits.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, run.Limits.Timeout)
		defer cancel()
	}

	start := time.Now()
	offset := run.Position()
	defer func() {
		state = run.State()
		if err != nil {
			err = &ErrRuntime{Offset: offset, Err: err}
		}
		if run.Verbose {
			log.Debug().
				Str("config", state.Config).
				Stringer("status", state.Status).
				Int("steps", run.Steps()).
				Dur("elapsed", time.Since(start)).
				Msg("run")
		}
	}()

	if !run.Begin() {
		err = run.Err()
		return
	}

	base := run.Steps()
	for polls := 0; ; polls++ {
		// Only operators count against the budget; the end of the text,
		// comments included, is always reachable.
		if run.Limits.MaxSteps > 0 && run.Next() != engine.OP_EOF &&
			run.Steps()-base >= run.Limits.MaxSteps {
			offset = run.Position()
			err = ErrStepLimit
			run.Halt(err)
			return
		}

		offset = run.Position()

		if polls%CHECK_INTERVAL == 0 {
			err = ctx.Err()
			if err != nil {
				run.Halt(err)
				return
			}
		}

		var done bool
		done, err = run.Step()
		if done {
			return
		}
	}
}
