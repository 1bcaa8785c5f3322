package models

import "time"

// TaskPatch is a partial task update carried by a push message. A field is
// authoritative only when present (non-nil); absent fields leave the local
// record untouched.
type TaskPatch struct {
	TaskID        string         `json:"task_id"`
	Status        *TaskStatus    `json:"status,omitempty"`
	Progress      *TaskProgress  `json:"progress,omitempty"`
	StartedTime   *time.Time     `json:"started_time,omitempty"`
	CompletedTime *time.Time     `json:"completed_time,omitempty"`
	Results       []TaskResult   `json:"results,omitempty"`
	Summary       *TaskSummary   `json:"summary,omitempty"`
	ErrorMessage  *string        `json:"error_message,omitempty"`
	ErrorDetails  map[string]any `json:"error_details,omitempty"`
}

// FilePatch is a partial file update carried by a push message.
type FilePatch struct {
	FileID           string      `json:"file_id"`
	Status           *FileStatus `json:"status,omitempty"`
	ErrorMessage     *string     `json:"error_message,omitempty"`
	ProcessingTaskID *string     `json:"processing_task_id,omitempty"`
}

// ApplyTaskPatch merges p into t field by field: a carried field replaces the
// local value, an omitted one is left as is. Patches are applied in receipt
// order; no staleness rejection is performed (the server is the single
// source of truth, even when a patch carries an older progress value).
func ApplyTaskPatch(t *Task, p TaskPatch) {
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Progress != nil {
		t.Progress = *p.Progress
	}
	if p.StartedTime != nil {
		t.StartedTime = p.StartedTime
	}
	if p.CompletedTime != nil {
		t.CompletedTime = p.CompletedTime
	}
	if p.Results != nil {
		t.Results = p.Results
	}
	if p.Summary != nil {
		t.Summary = p.Summary
	}
	if p.ErrorMessage != nil {
		t.ErrorMessage = *p.ErrorMessage
	}
	if p.ErrorDetails != nil {
		t.ErrorDetails = p.ErrorDetails
	}
}

// ApplyFilePatch merges p into f with the same field-presence semantics as
// ApplyTaskPatch.
func ApplyFilePatch(f *File, p FilePatch) {
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.ErrorMessage != nil {
		f.ErrorMessage = *p.ErrorMessage
	}
	if p.ProcessingTaskID != nil {
		f.ProcessingTaskID = *p.ProcessingTaskID
	}
}
