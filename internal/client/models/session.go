package models

import "time"

// Session groups files and tasks by originating client session. It is
// read-only from the client's perspective and is only used as a scoping key
// for listing operations.
type Session struct {
	SessionID           string         `json:"session_id"`
	CreatedTime         time.Time      `json:"created_time"`
	LastActivity        time.Time      `json:"last_activity"`
	FileIDs             []string       `json:"file_ids"`
	TaskIDs             []string       `json:"task_ids"`
	ClientIP            string         `json:"client_ip,omitempty"`
	UserAgent           string         `json:"user_agent,omitempty"`
	IsActive            bool           `json:"is_active"`
	UploadedFilesCount  int            `json:"uploaded_files_count"`
	CompletedTasksCount int            `json:"completed_tasks_count"`
	Metadata            map[string]any `json:"metadata,omitempty"`
}
