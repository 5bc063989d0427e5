package scheduler

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	calls atomic.Int32
	err   error
}

func (r *countingRunner) RunStandard(ctx context.Context) error {
	r.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("job context has no deadline")
	}
	return r.err
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestStart_InvalidSpec(t *testing.T) {
	s := NewReportScheduler(&countingRunner{}, quietLogger(), "not a cron spec")

	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a cron spec")
}

func TestRunOnce(t *testing.T) {
	runner := &countingRunner{}
	s := NewReportScheduler(runner, quietLogger(), "@every 1h")

	s.runOnce()
	runner.err = errors.New("send failed")
	s.runOnce()

	assert.Equal(t, int32(2), runner.calls.Load())
}

func TestStartAndStop(t *testing.T) {
	runner := &countingRunner{}
	s := NewReportScheduler(runner, quietLogger(), "@every 1s")

	require.NoError(t, s.Start())
	assert.Eventually(t, func() bool {
		return runner.calls.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)
	s.Stop()
}
