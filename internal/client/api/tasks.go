package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/docproc/internal/client/models"
)

// CreateTaskRequest is the body of POST /tasks. FileIDs must reference
// existing files; the server validates them, the client does not pre-check.
type CreateTaskRequest struct {
	FileIDs  []string           `json:"file_ids"`
	TaskType models.TaskType    `json:"task_type"`
	Options  models.TaskOptions `json:"options"`
}

// TaskCreated is the server's acknowledgement of a new task. The task starts
// in status "pending".
type TaskCreated struct {
	TaskID        string            `json:"task_id"`
	Status        models.TaskStatus `json:"status"`
	CreatedTime   time.Time         `json:"created_time"`
	EstimatedTime *float64          `json:"estimated_time,omitempty"`
}

type tasksData struct {
	Tasks []models.Task `json:"tasks"`
}

func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*TaskCreated, error) {
	var created TaskCreated
	if err := c.doJSON(ctx, http.MethodPost, "/tasks", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetTask fetches the full task record. There is no lighter status endpoint:
// this call doubles as the status probe used by the watcher.
func (c *Client) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	var task models.Task
	if err := c.doJSON(ctx, http.MethodGet, "/tasks/"+taskID, nil, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks enumerates tasks, optionally scoped to a session.
func (c *Client) ListTasks(ctx context.Context, sessionID string) ([]models.Task, error) {
	query := url.Values{}
	if sessionID != "" {
		query.Set("session_id", sessionID)
	}
	var data tasksData
	if err := c.doJSON(ctx, http.MethodGet, "/tasks", query, nil, &data); err != nil {
		return nil, err
	}
	return data.Tasks, nil
}

// CancelTask asks the server to cancel a pending or running task. Cancelling
// a task that is already terminal is acknowledged by the server as a no-op.
func (c *Client) CancelTask(ctx context.Context, taskID string) error {
	return c.doJSON(ctx, http.MethodPost, "/tasks/"+taskID+"/cancel", nil, nil, nil)
}

// RetryTask asks the server to retry a failed task. Whether the retry reuses
// the task id or creates a new one is server-defined; callers re-fetch to
// observe the outcome.
func (c *Client) RetryTask(ctx context.Context, taskID string) error {
	return c.doJSON(ctx, http.MethodPost, "/tasks/"+taskID+"/retry", nil, nil, nil)
}
