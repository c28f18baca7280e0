package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/montecarlo/pkg/logger"
)

type stubJob struct {
	name     string
	schedule string
	failures int32 // fail this many times before succeeding
	calls    atomic.Int32
}

func (j *stubJob) Name() string     { return j.name }
func (j *stubJob) Schedule() string { return j.schedule }

func (j *stubJob) Run(ctx context.Context) error {
	if j.calls.Add(1) <= j.failures {
		return errors.New("transient")
	}
	return nil
}

func TestAddJob(t *testing.T) {
	s := New(logger.Nop())

	require.NoError(t, s.AddJob(&stubJob{name: "a", schedule: "0 0 * * * *"}))
	require.Error(t, s.AddJob(&stubJob{name: "a", schedule: "0 0 * * * *"}))
	require.Error(t, s.AddJob(&stubJob{name: "b", schedule: "not a schedule"}))

	assert.Equal(t, []string{"a"}, s.GetAllJobs())
}

func TestRunJobSyncRetries(t *testing.T) {
	s := New(logger.Nop(), WithRetries(2, 0))
	job := &stubJob{name: "flaky", schedule: "@hourly", failures: 2}
	require.NoError(t, s.AddJob(job))

	result, err := s.RunJobSync("flaky")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 3, result.Attempts)
	assert.Empty(t, result.Error)
}

func TestRunJobSyncGivesUp(t *testing.T) {
	s := New(logger.Nop(), WithRetries(1, 0))
	require.NoError(t, s.AddJob(&stubJob{name: "broken", schedule: "@hourly", failures: 100}))

	result, err := s.RunJobSync("broken")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 2, result.Attempts)
	assert.Equal(t, "transient", result.Error)

	stats := s.GetJobStats()["broken"]
	assert.Equal(t, 1, stats.TotalRuns)
	assert.Equal(t, 1, stats.FailureCount)
	assert.NotNil(t, stats.LastFailure)
	assert.Nil(t, stats.LastSuccess)
}

func TestRunJobUnknown(t *testing.T) {
	s := New(logger.Nop())
	_, err := s.RunJobSync("missing")
	require.Error(t, err)
}

func TestRunJobSyncRecordsHistory(t *testing.T) {
	s := New(logger.Nop())
	job := &stubJob{name: "a", schedule: "@hourly"}
	require.NoError(t, s.AddJob(job))

	_, err := s.RunJobSync("a")
	require.NoError(t, err)

	h, err := s.GetJobHistory("a")
	require.NoError(t, err)
	require.Len(t, h.Results, 1)
	assert.Equal(t, 1, h.Results[0].Attempts)

	_, err = s.GetJobHistory("missing")
	require.Error(t, err)
}

func TestStopCancelsRuns(t *testing.T) {
	s := New(logger.Nop(), WithRetries(5, time.Hour))
	job := &stubJob{name: "a", schedule: "@hourly", failures: 100}
	require.NoError(t, s.AddJob(job))

	s.Start()
	s.Stop()

	result, err := s.RunJobSync("a")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 0, result.Attempts)
	assert.Equal(t, int32(0), job.calls.Load())
}

func TestJobHistory(t *testing.T) {
	h := &JobHistory{}
	for i := 0; i < maxHistory+10; i++ {
		h.AddResult(JobResult{Success: i%2 == 0})
	}

	assert.Len(t, h.Results, maxHistory)
	assert.Len(t, h.GetLatestResults(5), 5)
	assert.Len(t, h.GetLatestResults(1000), maxHistory)
	assert.Empty(t, h.GetLatestResults(0))
	assert.Len(t, h.GetFailedResults(), maxHistory/2)
	assert.InDelta(t, 0.5, h.GetSuccessRate(), 1e-9)
	assert.Equal(t, 0.0, (&JobHistory{}).GetSuccessRate())
}
