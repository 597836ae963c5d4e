package jobqueue

import (
	"encoding/json"
	"time"
)

// JobType defines the type of job
type JobType string

const (
	JobTypeSliderImage JobType = "slider_image"
)

// JobStatus defines the status of a job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusRetrying   JobStatus = "retrying"
)

// Job represents a background job
type Job struct {
	ID          string                 `json:"id"`
	Type        JobType                `json:"type"`
	Status      JobStatus              `json:"status"`
	Payload     map[string]interface{} `json:"payload"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	ProcessedAt *time.Time             `json:"processed_at,omitempty"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
	ErrorMsg    string                 `json:"error_msg,omitempty"`
	RetryCount  int                    `json:"retry_count"`
	MaxRetries  int                    `json:"max_retries"`
}

// MarkAsProcessing transitions the job into the processing state.
func (j *Job) MarkAsProcessing() {
	now := time.Now()
	j.Status = JobStatusProcessing
	j.ProcessedAt = &now
	j.UpdatedAt = now
}

// MarkAsCompleted transitions the job into the completed state.
func (j *Job) MarkAsCompleted() {
	now := time.Now()
	j.Status = JobStatusCompleted
	j.CompletedAt = &now
	j.UpdatedAt = now
	j.ErrorMsg = ""
}

// MarkAsFailed records the failure and bumps the retry counter.
func (j *Job) MarkAsFailed(errMsg string) {
	j.Status = JobStatusFailed
	j.ErrorMsg = errMsg
	j.RetryCount++
	j.UpdatedAt = time.Now()
}

// MarkAsRetrying transitions the job into the retrying state.
func (j *Job) MarkAsRetrying() {
	j.Status = JobStatusRetrying
	j.UpdatedAt = time.Now()
}

// IsRetryable reports whether the job may be retried again.
func (j *Job) IsRetryable() bool {
	return j.RetryCount <= j.MaxRetries
}

// SliderImageJobPayload contains the payload for slider image processing jobs
type SliderImageJobPayload struct {
	SliderID  uint   `json:"slider_id"`
	ImagePath string `json:"image_path"` // Finalized path on the public disk
}

// ToMap converts the payload to a map for storage
func (p SliderImageJobPayload) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"slider_id":  p.SliderID,
		"image_path": p.ImagePath,
	}
}

// SliderImageJobPayloadFromMap creates a payload from a map
func SliderImageJobPayloadFromMap(data map[string]interface{}) (*SliderImageJobPayload, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var payload SliderImageJobPayload
	err = json.Unmarshal(jsonData, &payload)
	return &payload, err
}
