package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/bfi/engine"
)

func newRunner(t *testing.T, code string, input []int64, limits Limits) *Runner {
	t.Helper()

	eng, err := engine.New(code, input, 8, false)
	require.NoError(t, err)
	return NewRunner(eng, limits)
}

func TestRunnerComplete(t *testing.T) {
	assert := assert.New(t)

	run := newRunner(t, "+++[.-]", nil, Limits{MaxSteps: 1000})
	state, err := run.Run(context.Background())
	assert.NoError(err)
	assert.Equal(engine.STATUS_COMPLETE, state.Status)
	assert.Equal([]int64{3, 2, 1}, state.Output)
	assert.Equal("U8", state.Config)
}

func TestRunnerWaiting(t *testing.T) {
	assert := assert.New(t)

	run := newRunner(t, ",.", nil, Limits{})
	state, err := run.Run(context.Background())
	assert.NoError(err)
	assert.Equal(engine.STATUS_WAITING, state.Status)

	run.Feed(65)
	state, err = run.Run(context.Background())
	assert.NoError(err)
	assert.Equal(engine.STATUS_COMPLETE, state.Status)
	assert.Equal([]int64{65}, state.Output)
}

func TestRunnerStepLimit(t *testing.T) {
	assert := assert.New(t)

	run := newRunner(t, "+.[]", nil, Limits{MaxSteps: 50})
	run.Verbose = true
	state, err := run.Run(context.Background())

	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(engine.STATUS_STOPPED, state.Status)
	assert.Equal([]int64{1}, state.Output)
	assert.Equal(50, run.Steps())

	var rt *ErrRuntime
	if assert.True(errors.As(err, &rt)) {
		assert.GreaterOrEqual(rt.Offset, 2)
	}

	// Stopped is terminal for the runner too.
	state, err = run.Run(context.Background())
	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(engine.STATUS_STOPPED, state.Status)
}

func TestRunnerStepLimitExact(t *testing.T) {
	assert := assert.New(t)

	for _, code := range []string{
		"+.",
		"+.\n",
		"+ then . and a trailing comment\n",
	} {
		run := newRunner(t, code, nil, Limits{MaxSteps: 2})
		state, err := run.Run(context.Background())

		assert.NoError(err, code)
		assert.Equal(engine.STATUS_COMPLETE, state.Status, code)
		assert.Equal([]int64{1}, state.Output, code)
		assert.Equal(2, run.Steps(), code)
	}

	run := newRunner(t, "+.+.\n", nil, Limits{MaxSteps: 2})
	state, err := run.Run(context.Background())
	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(engine.STATUS_STOPPED, state.Status)
	assert.Equal([]int64{1}, state.Output)

	var rt *ErrRuntime
	if assert.True(errors.As(err, &rt)) {
		assert.Equal(2, rt.Offset)
	}
}

func TestRunnerTimeout(t *testing.T) {
	assert := assert.New(t)

	run := newRunner(t, "+[]", nil, Limits{Timeout: 20 * time.Millisecond})
	state, err := run.Run(context.Background())

	assert.ErrorIs(err, context.DeadlineExceeded)
	assert.Equal(engine.STATUS_STOPPED, state.Status)
}

func TestRunnerCancelled(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	run := newRunner(t, "+.", nil, Limits{})
	state, err := run.Run(ctx)

	assert.ErrorIs(err, context.Canceled)
	assert.Equal(engine.STATUS_STOPPED, state.Status)
	assert.Empty(state.Output)
}

func TestRunnerUnmatched(t *testing.T) {
	assert := assert.New(t)

	run := newRunner(t, "+[.", nil, Limits{})
	state, err := run.Run(context.Background())

	assert.ErrorIs(err, engine.ErrBracketUnmatched)
	assert.Equal(engine.STATUS_STOPPED, state.Status)
	assert.Empty(state.Output)
}
