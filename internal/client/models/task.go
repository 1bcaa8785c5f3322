package models

import "time"

// TaskStatus is the server-assigned lifecycle state of a processing task.
//
// The transitions are owned entirely by the server:
//
//	pending -> running -> completed | failed
//	pending|running -> cancelled
//	failed -> pending (retry)
//
// The client only observes them, it never invents a transition.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
	TaskStatusCancelled TaskStatus = "cancelled"
)

// Terminal reports whether no further transitions are possible (short of an
// explicit retry).
func (s TaskStatus) Terminal() bool {
	switch s {
	case TaskStatusCompleted, TaskStatusFailed, TaskStatusCancelled:
		return true
	}
	return false
}

// TaskType selects what the processing backend extracts from the documents.
type TaskType string

const (
	TaskTypeFull    TaskType = "full"
	TaskTypeText    TaskType = "text"
	TaskTypeFormula TaskType = "formula"
	TaskTypeTable   TaskType = "table"
)

// TaskOptions is a partially-specified processing configuration. Any subset
// of fields may be supplied; unset fields fall back to server-side defaults,
// which is why SplitPages is a pointer. CustomParams is passed through to the
// backend verbatim.
type TaskOptions struct {
	SplitPages   *bool          `json:"split_pages,omitempty"`
	OutputFormat string         `json:"output_format,omitempty"`
	Language     string         `json:"language,omitempty"`
	CustomParams map[string]any `json:"custom_params,omitempty"`
}

// TaskProgress reports how far a running task has advanced.
// ProgressPercent is within [0,100]; ProcessedFiles never exceeds TotalFiles.
type TaskProgress struct {
	CurrentStep        string   `json:"current_step"`
	ProgressPercent    float64  `json:"progress_percent"`
	ProcessedFiles     int      `json:"processed_files"`
	TotalFiles         int      `json:"total_files"`
	EstimatedRemaining *float64 `json:"estimated_remaining,omitempty"`
}

// TaskResult is one output artifact produced for one input file. Immutable
// once produced; DownloadURL is relative and opaque to the client.
type TaskResult struct {
	FileID      string `json:"file_id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	DownloadURL string `json:"download_url"`
}

// TaskSummary is present once a task reaches completed or failed.
// ProcessedFiles + FailedFiles == TotalFiles.
type TaskSummary struct {
	TotalFiles     int     `json:"total_files"`
	ProcessedFiles int     `json:"processed_files"`
	FailedFiles    int     `json:"failed_files"`
	ProcessingTime float64 `json:"processing_time"`
}

// Task is one processing job over an ordered, non-empty set of files.
//
// Invariants:
//   - StartedTime is absent while Status == pending, present afterwards.
//   - CompletedTime is absent until Status is terminal.
//   - Results is non-empty only when Status == completed.
//   - ErrorMessage/ErrorDetails are present iff Status == failed.
type Task struct {
	TaskID        string         `json:"task_id"`
	TaskType      TaskType       `json:"task_type"`
	FileIDs       []string       `json:"file_ids"`
	Options       TaskOptions    `json:"options"`
	Status        TaskStatus     `json:"status"`
	Progress      TaskProgress   `json:"progress"`
	CreatedTime   time.Time      `json:"created_time"`
	StartedTime   *time.Time     `json:"started_time,omitempty"`
	CompletedTime *time.Time     `json:"completed_time,omitempty"`
	Results       []TaskResult   `json:"results,omitempty"`
	Summary       *TaskSummary   `json:"summary,omitempty"`
	ErrorMessage  string         `json:"error_message,omitempty"`
	ErrorDetails  map[string]any `json:"error_details,omitempty"`
	SessionID     string         `json:"session_id,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}
