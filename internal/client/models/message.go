package models

import "encoding/json"

// Push message types recognized by the status reconciler. Data carries a
// TaskPatch or FilePatch respectively.
const (
	MessageTypeTaskUpdate = "task_update"
	MessageTypeFileUpdate = "file_update"
)

// Message is one inbound push notification from the server. Data is decoded
// lazily according to Type; unknown types are ignored by the reconciler.
type Message struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}
