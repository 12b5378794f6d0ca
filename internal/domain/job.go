package domain

import "time"

// JobStatus represents the final status of an import run.
type JobStatus string

const (
	JobStatusProcessing          JobStatus = "processing"
	JobStatusCompleted           JobStatus = "completed"
	JobStatusCompletedWithErrors JobStatus = "completed_with_errors"
	JobStatusFailed              JobStatus = "failed"
)

// Resource types that can be bulk imported.
const (
	ResourceGiftBoxes = "kidsgiftboxes"
	ResourceCarousel  = "carousel"
)

// ImportRun is the persisted record of one bulk import invocation.
type ImportRun struct {
	ID           string     `json:"id"`
	ResourceType string     `json:"resourceType"`
	FileName     string     `json:"fileName"`
	Status       JobStatus  `json:"status"`
	TotalRows    int        `json:"totalRows"`
	SuccessCount int        `json:"successCount"`
	ErrorCount   int        `json:"errorCount"`
	ErrorMessage *string    `json:"errorMessage,omitempty"`
	RequestID    string     `json:"requestId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// RowError describes one rejected import row.
type RowError struct {
	Row   int               `json:"row"`
	Data  map[string]string `json:"data,omitempty"`
	Error string            `json:"error"`
}

// ImportedRow describes one persisted import row.
type ImportedRow struct {
	Row       int    `json:"row"`
	ID        string `json:"id"`
	DisplayID string `json:"displayId"`
	Name      string `json:"name"`
}

// ImportReport is the aggregate result of one bulk import.
// SuccessCount + ErrorCount always equals TotalRows.
type ImportReport struct {
	ImportID     string        `json:"importId,omitempty"`
	Success      bool          `json:"success"`
	TotalRows    int           `json:"totalRows"`
	SuccessCount int           `json:"successCount"`
	ErrorCount   int           `json:"errorCount"`
	Errors       []RowError    `json:"errors"`
	Imported     []ImportedRow `json:"imported"`
	// Duration is the elapsed processing time in milliseconds.
	Duration int64 `json:"duration"`
}

// Status derives the run status from the report counters.
func (r *ImportReport) Status() JobStatus {
	switch {
	case r.ErrorCount == 0:
		return JobStatusCompleted
	case r.SuccessCount == 0:
		return JobStatusFailed
	default:
		return JobStatusCompletedWithErrors
	}
}
