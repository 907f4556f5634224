package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJobStatus(t *testing.T) {
	s, ok := ParseJobStatus("started")
	assert.True(t, ok)
	assert.Equal(t, JobStatusStarted, s)

	for _, raw := range []string{"  Started ", "STARTED", "Completed", " pending "} {
		_, ok = ParseJobStatus(raw)
		assert.False(t, ok, raw)
	}

	_, ok = ParseJobStatus("in-progress")
	assert.False(t, ok)

	_, ok = ParseJobStatus("")
	assert.False(t, ok)
}

func TestJob_ApplyStatus_StartTimeSetOnce(t *testing.T) {
	t0 := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	j := NewPendingJob("job-1", []string{"Oil Change"}, "", t0)

	prev := j.ApplyStatus(JobStatusStarted, t0.Add(time.Minute))
	assert.Equal(t, JobStatusPending, prev)
	require.NotNil(t, j.StartTime)
	first := *j.StartTime

	prev = j.ApplyStatus(JobStatusStarted, t0.Add(2*time.Minute))
	assert.Equal(t, JobStatusStarted, prev)
	assert.True(t, j.StartTime.Equal(first))

	j.ApplyStatus(JobStatusPending, t0.Add(3*time.Minute))
	j.ApplyStatus(JobStatusStarted, t0.Add(4*time.Minute))
	assert.True(t, j.StartTime.Equal(first), "re-entry into started must not overwrite start time")
	assert.Nil(t, j.CompletionTime)
}

func TestJob_ApplyStatus_CompletionTimeSetOnce(t *testing.T) {
	t0 := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	j := NewPendingJob("job-1", nil, "", t0)

	j.ApplyStatus(JobStatusCompleted, t0.Add(time.Hour))
	require.NotNil(t, j.CompletionTime)
	first := *j.CompletionTime

	j.ApplyStatus(JobStatusCompleted, t0.Add(2*time.Hour))
	assert.True(t, j.CompletionTime.Equal(first))

	j.ApplyStatus(JobStatusStarted, t0.Add(3*time.Hour))
	j.ApplyStatus(JobStatusCompleted, t0.Add(4*time.Hour))
	assert.True(t, j.CompletionTime.Equal(first))
	assert.Equal(t, t0.Add(4*time.Hour), j.UpdatedAt)
}

func TestJobStatus_IsActive(t *testing.T) {
	assert.True(t, JobStatusPending.IsActive())
	assert.True(t, JobStatusStarted.IsActive())
	assert.False(t, JobStatusCompleted.IsActive())
}
