package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"  // accepted, waiting for a worker
	JobStatusRunning JobStatus = "RUNNING" // in progress
	JobStatusParsed  JobStatus = "PARSED"  // fields extracted and receipt persisted
	JobStatusFailed  JobStatus = "FAILED"  // terminal failure
)
