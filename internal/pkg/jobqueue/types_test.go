package jobqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliderImageJobPayloadFromMap(t *testing.T) {
	p := SliderImageJobPayload{SliderID: 12, ImagePath: "sliders/temp-tok-1.jpg"}

	got, err := SliderImageJobPayloadFromMap(p.ToMap())
	require.NoError(t, err)
	assert.Equal(t, p, *got)
}

func TestJobLifecycle(t *testing.T) {
	job := &Job{Status: JobStatusPending, MaxRetries: 2}

	job.MarkAsProcessing()
	assert.Equal(t, JobStatusProcessing, job.Status)
	require.NotNil(t, job.ProcessedAt)

	job.MarkAsFailed("decode error")
	assert.Equal(t, JobStatusFailed, job.Status)
	assert.Equal(t, "decode error", job.ErrorMsg)
	assert.Equal(t, 1, job.RetryCount)
	assert.True(t, job.IsRetryable())

	job.MarkAsFailed("decode error")
	job.MarkAsFailed("decode error")
	assert.False(t, job.IsRetryable())

	job.MarkAsCompleted()
	assert.Equal(t, JobStatusCompleted, job.Status)
	assert.Empty(t, job.ErrorMsg)
	require.NotNil(t, job.CompletedAt)
}
