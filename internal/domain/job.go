package domain

// JobStatus values reported by the generation backend alongside a failure
// or deferral.
const (
	// StatusWaitingForPendingJob signals that an earlier job is still being
	// processed. It is a benign retry hint, never a reportable error.
	StatusWaitingForPendingJob = "WAITING_FOR_PENDING_JOB"
)

// JobResult is the normalized outcome of submitting one generation job.
// Success carries the backend job id; failure carries a user-presentable
// message and the backend status string.
type JobResult struct {
	Success bool   `json:"success"`
	JobID   string `json:"jobId,omitempty"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
}

// Pending reports whether the result is the benign waiting status that
// callers may retry rather than surface as an error.
func (r JobResult) Pending() bool {
	return !r.Success && r.Status == StatusWaitingForPendingJob
}
