package services

import (
	"context"

	"github.com/dmitrijs2005/docproc/internal/client/api"
	"github.com/dmitrijs2005/docproc/internal/client/models"
	"github.com/dmitrijs2005/docproc/internal/logging"
)

// TaskAPI is the transport surface the task service needs.
type TaskAPI interface {
	CreateTask(ctx context.Context, req api.CreateTaskRequest) (*api.TaskCreated, error)
	GetTask(ctx context.Context, taskID string) (*models.Task, error)
	ListTasks(ctx context.Context, sessionID string) ([]models.Task, error)
	CancelTask(ctx context.Context, taskID string) error
	RetryTask(ctx context.Context, taskID string) error
}

// TaskService is the task lifecycle client. All state transitions belong to
// the server; the service only issues the explicit create/cancel/retry
// operations and reads back what the server decided.
type TaskService struct {
	api    TaskAPI
	logger logging.Logger
}

func NewTaskService(api TaskAPI, logger logging.Logger) *TaskService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &TaskService{api: api, logger: logger}
}

// Create submits a new processing task over the given file ids. An empty
// selection is rejected locally, before any network call. An empty task type
// defaults to full extraction. Unknown or deleted file ids are rejected by
// the server, not pre-validated here.
func (s *TaskService) Create(ctx context.Context, fileIDs []string, taskType models.TaskType, opts models.TaskOptions) (*api.TaskCreated, error) {
	if len(fileIDs) == 0 {
		return nil, ErrNoFiles
	}
	if taskType == "" {
		taskType = models.TaskTypeFull
	}

	created, err := s.api.CreateTask(ctx, api.CreateTaskRequest{
		FileIDs:  fileIDs,
		TaskType: taskType,
		Options:  opts,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "task created", "task_id", created.TaskID, "type", taskType, "files", len(fileIDs))
	return created, nil
}

func (s *TaskService) Get(ctx context.Context, taskID string) (*models.Task, error) {
	return s.api.GetTask(ctx, taskID)
}

func (s *TaskService) List(ctx context.Context, sessionID string) ([]models.Task, error) {
	return s.api.ListTasks(ctx, sessionID)
}

// Status is a convenience over Get: there is no lighter status endpoint, so
// the full record is fetched and reduced to status and progress.
func (s *TaskService) Status(ctx context.Context, taskID string) (models.TaskStatus, models.TaskProgress, error) {
	task, err := s.api.GetTask(ctx, taskID)
	if err != nil {
		return "", models.TaskProgress{}, err
	}
	return task.Status, task.Progress, nil
}

// Cancel requests cancellation. On a task that already reached a terminal
// status the server acknowledges without effect; that acknowledgement is
// passed through, not turned into an error.
func (s *TaskService) Cancel(ctx context.Context, taskID string) error {
	return s.api.CancelTask(ctx, taskID)
}

// Retry fires the retry request and re-fetches the task to observe what the
// server decided (in-place reset vs. a fresh attempt is server-defined).
func (s *TaskService) Retry(ctx context.Context, taskID string) (*models.Task, error) {
	if err := s.api.RetryTask(ctx, taskID); err != nil {
		return nil, err
	}
	task, err := s.api.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "task retried", "task_id", taskID, "status", task.Status)
	return task, nil
}
