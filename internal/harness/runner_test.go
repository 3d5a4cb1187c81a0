package harness

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caio/go-bigo"
)

// stepClock advances by a fixed amount every time it is read.
type stepClock struct {
	now  time.Duration
	step time.Duration
}

func (c *stepClock) CPUTime() time.Duration {
	c.now += c.step
	return c.now
}

type countingTrial struct {
	placeholder
	prepared, ran int
	err           error
}

func (t *countingTrial) Executable() bool { return true }
func (t *countingTrial) Prepare()         { t.prepared++ }
func (t *countingTrial) Run()             { t.ran++ }
func (t *countingTrial) Check() error     { return t.err }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestRunnerMeasures(t *testing.T) {
	trial := &countingTrial{placeholder: placeholder{class: bigo.ON, items: 10}}
	skipped := &placeholder{class: bigo.OFactorial, items: 10}

	r := Runner{Repeat: 3, Clock: &stepClock{step: time.Millisecond}, Logger: quietLogger()}
	ms, err := r.Run(context.Background(), []Trial{trial, skipped})
	require.NoError(t, err)
	require.Len(t, ms, 2)

	assert.Equal(t, 3, trial.prepared)
	assert.Equal(t, 3, trial.ran)

	assert.True(t, ms[0].Executed)
	assert.Equal(t, 3, ms[0].Runs)
	assert.InDelta(t, float64(time.Millisecond), float64(ms[0].CPU), float64(time.Microsecond))
	assert.InDelta(t, 0, float64(ms[0].CPUStdDev), float64(time.Microsecond))
	assert.False(t, ms[0].Verified)

	assert.Equal(t, Measurement{Class: bigo.OFactorial, Items: 10}, ms[1])
}

func TestRunnerDefaultsToOneRun(t *testing.T) {
	trial := &countingTrial{placeholder: placeholder{class: bigo.ON}}

	r := Runner{Logger: quietLogger()}
	ms, err := r.Run(context.Background(), []Trial{trial})
	require.NoError(t, err)

	assert.Equal(t, 1, trial.ran)
	assert.Equal(t, 1, ms[0].Runs)
}

func TestRunnerVerify(t *testing.T) {
	good := &countingTrial{placeholder: placeholder{class: bigo.O1}}
	bad := &countingTrial{placeholder: placeholder{class: bigo.ON}, err: checkFailed(bigo.ON, "boom")}

	r := Runner{Repeat: 2, Verify: true, Logger: quietLogger()}
	ms, err := r.Run(context.Background(), []Trial{good, bad})

	assert.ErrorIs(t, err, ErrCheckFailed)
	require.Len(t, ms, 1)
	assert.True(t, ms[0].Verified)
	assert.Equal(t, 1, bad.ran, "a failed check stops the run")
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	trial := &countingTrial{placeholder: placeholder{class: bigo.ON}}
	r := Runner{Logger: quietLogger()}
	_, err := r.Run(ctx, []Trial{trial})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, trial.ran)
}

func TestRunnerEndToEnd(t *testing.T) {
	trials, err := Build(200, Seed(5), HanoiDisks(6))
	require.NoError(t, err)

	r := Runner{Verify: true, Logger: quietLogger()}
	ms, err := r.Run(context.Background(), trials)
	require.NoError(t, err)
	require.Len(t, ms, len(bigo.Classes()))

	for _, m := range ms[:bigo.OFactorial] {
		assert.True(t, m.Executed, m.Class.String())
		assert.GreaterOrEqual(t, m.CPU, time.Duration(0))
	}
}
