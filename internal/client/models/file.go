// Package models defines client-side data models for the docproc CLI.
package models

import "time"

// FileStatus is the server-assigned lifecycle state of an uploaded file.
// The client never sets it locally; every transition is learned from the
// backend.
type FileStatus string

const (
	FileStatusUploaded   FileStatus = "uploaded"
	FileStatusProcessing FileStatus = "processing"
	FileStatusCompleted  FileStatus = "completed"
	FileStatusError      FileStatus = "error"
	FileStatusDeleted    FileStatus = "deleted"
)

// File is one uploaded artifact tracked by the backend, independent of any
// task.
//
// Invariants (server-enforced, mirrored here for tests):
//   - ErrorMessage is set iff Status == FileStatusError.
//   - ProcessingTaskID is set only while the file is being (or has been)
//     processed by that task.
type File struct {
	FileID           string         `json:"file_id"`
	Filename         string         `json:"filename"`
	OriginalFilename string         `json:"original_filename"`
	Size             int64          `json:"size"`
	ContentType      string         `json:"content_type"`
	Extension        string         `json:"extension"`
	StoragePath      string         `json:"storage_path"`
	UploadTime       time.Time      `json:"upload_time"`
	Status           FileStatus     `json:"status"`
	ErrorMessage     string         `json:"error_message,omitempty"`
	SessionID        string         `json:"session_id,omitempty"`
	ProcessingTaskID string         `json:"processing_task_id,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}
