package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/docproc/internal/client/api"
	"github.com/dmitrijs2005/docproc/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTaskAPI struct {
	createReq  *api.CreateTaskRequest
	createResp *api.TaskCreated
	createErr  error

	task   *models.Task
	getErr error

	cancelled []string
	cancelErr error
	retried   []string
	retryErr  error
}

func (f *fakeTaskAPI) CreateTask(ctx context.Context, req api.CreateTaskRequest) (*api.TaskCreated, error) {
	f.createReq = &req
	return f.createResp, f.createErr
}

func (f *fakeTaskAPI) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	return f.task, f.getErr
}

func (f *fakeTaskAPI) ListTasks(ctx context.Context, sessionID string) ([]models.Task, error) {
	if f.task == nil {
		return nil, nil
	}
	return []models.Task{*f.task}, nil
}

func (f *fakeTaskAPI) CancelTask(ctx context.Context, taskID string) error {
	f.cancelled = append(f.cancelled, taskID)
	return f.cancelErr
}

func (f *fakeTaskAPI) RetryTask(ctx context.Context, taskID string) error {
	f.retried = append(f.retried, taskID)
	return f.retryErr
}

func TestTaskService_Create_EmptySelectionRejectedBeforeNetwork(t *testing.T) {
	fake := &fakeTaskAPI{}
	svc := NewTaskService(fake, nil)

	_, err := svc.Create(context.Background(), nil, models.TaskTypeFull, models.TaskOptions{})
	require.ErrorIs(t, err, ErrNoFiles)
	assert.Nil(t, fake.createReq, "no request may reach the transport")
}

func TestTaskService_Create_DefaultsToFull(t *testing.T) {
	fake := &fakeTaskAPI{createResp: &api.TaskCreated{TaskID: "t1", Status: models.TaskStatusPending}}
	svc := NewTaskService(fake, nil)

	created, err := svc.Create(context.Background(), []string{"f1"}, "", models.TaskOptions{})
	require.NoError(t, err)
	assert.Equal(t, "t1", created.TaskID)
	assert.Equal(t, models.TaskStatusPending, created.Status)

	require.NotNil(t, fake.createReq)
	assert.Equal(t, models.TaskTypeFull, fake.createReq.TaskType)
	assert.Equal(t, []string{"f1"}, fake.createReq.FileIDs)
}

func TestTaskService_Status_ReducesFullFetch(t *testing.T) {
	fake := &fakeTaskAPI{task: &models.Task{
		TaskID:   "t1",
		Status:   models.TaskStatusRunning,
		Progress: models.TaskProgress{CurrentStep: "ocr", ProgressPercent: 60, ProcessedFiles: 1, TotalFiles: 2},
	}}
	svc := NewTaskService(fake, nil)

	status, progress, err := svc.Status(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusRunning, status)
	assert.Equal(t, float64(60), progress.ProgressPercent)
}

func TestTaskService_Cancel_TerminalTaskIsAcknowledgedNoOp(t *testing.T) {
	// The server acknowledges cancel on a completed task without effect; the
	// client passes the acknowledgement through unchanged.
	fake := &fakeTaskAPI{task: &models.Task{TaskID: "t1", Status: models.TaskStatusCompleted}}
	svc := NewTaskService(fake, nil)

	require.NoError(t, svc.Cancel(context.Background(), "t1"))
	assert.Equal(t, []string{"t1"}, fake.cancelled)

	after, err := svc.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, after.Status)
}

func TestTaskService_Retry_RefetchesOutcome(t *testing.T) {
	fake := &fakeTaskAPI{task: &models.Task{TaskID: "t1", Status: models.TaskStatusPending}}
	svc := NewTaskService(fake, nil)

	task, err := svc.Retry(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, fake.retried)
	assert.Equal(t, models.TaskStatusPending, task.Status)
}

func TestTaskService_Retry_TransportErrorStopsRefetch(t *testing.T) {
	fake := &fakeTaskAPI{retryErr: api.ErrUnavailable}
	svc := NewTaskService(fake, nil)

	_, err := svc.Retry(context.Background(), "t1")
	require.ErrorIs(t, err, api.ErrUnavailable)
}
