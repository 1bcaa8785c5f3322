package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/docproc/internal/client/api"
	"github.com/dmitrijs2005/docproc/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFiles struct {
	uploaded  []models.File
	uploadErr error

	listOut []models.File

	getOut *models.File
	getErr error

	delID  string
	delErr error

	downloadPath string
	downloadErr  error
}

func (f *fakeFiles) Upload(ctx context.Context, paths []string) ([]models.File, error) {
	return f.uploaded, f.uploadErr
}
func (f *fakeFiles) Get(ctx context.Context, fileID string) (*models.File, error) {
	return f.getOut, f.getErr
}
func (f *fakeFiles) List(ctx context.Context, sessionID string) ([]models.File, error) {
	return f.listOut, nil
}
func (f *fakeFiles) Delete(ctx context.Context, fileID string) error {
	f.delID = fileID
	return f.delErr
}
func (f *fakeFiles) Download(ctx context.Context, fileID string) (string, error) {
	return f.downloadPath, f.downloadErr
}

type fakeTasks struct {
	createCalls int
	createReq   struct {
		fileIDs  []string
		taskType models.TaskType
	}
	created   *api.TaskCreated
	createErr error

	getOut *models.Task

	cancelID string

	retryOut *models.Task
}

func (f *fakeTasks) Create(ctx context.Context, fileIDs []string, taskType models.TaskType, opts models.TaskOptions) (*api.TaskCreated, error) {
	f.createCalls++
	f.createReq.fileIDs = fileIDs
	f.createReq.taskType = taskType
	return f.created, f.createErr
}
func (f *fakeTasks) Get(ctx context.Context, taskID string) (*models.Task, error) {
	return f.getOut, nil
}
func (f *fakeTasks) List(ctx context.Context, sessionID string) ([]models.Task, error) {
	return nil, nil
}
func (f *fakeTasks) Cancel(ctx context.Context, taskID string) error {
	f.cancelID = taskID
	return nil
}
func (f *fakeTasks) Retry(ctx context.Context, taskID string) (*models.Task, error) {
	return f.retryOut, nil
}

type fakeResults struct {
	listOut  []models.TaskResult
	preview  *api.ResultPreview
	savePath string
	allPath  string
}

func (f *fakeResults) List(ctx context.Context, taskID string) ([]models.TaskResult, error) {
	return f.listOut, nil
}
func (f *fakeResults) Preview(ctx context.Context, taskID, resultID string) (*api.ResultPreview, error) {
	return f.preview, nil
}
func (f *fakeResults) Download(ctx context.Context, taskID, resultID string) (string, error) {
	return f.savePath, nil
}
func (f *fakeResults) DownloadAll(ctx context.Context, taskID string) (string, error) {
	return f.allPath, nil
}

type fakeWatcher struct {
	updates []models.Task
	final   *models.Task
	err     error
}

func (f *fakeWatcher) Watch(ctx context.Context, taskID string, onUpdate func(models.Task)) (*models.Task, error) {
	for _, u := range f.updates {
		if onUpdate != nil {
			onUpdate(u)
		}
	}
	return f.final, f.err
}

func newTestApp(out *bytes.Buffer, input string) *App {
	return &App{
		reader:    bufio.NewReader(strings.NewReader(input)),
		out:       out,
		sessionID: "sess-1",
	}
}

func TestUpload_PrintsAssignedIDs(t *testing.T) {
	var out bytes.Buffer
	a := newTestApp(&out, "")
	a.files = &fakeFiles{uploaded: []models.File{
		{FileID: "f1", OriginalFilename: "report.pdf", Size: 42, Status: models.FileStatusUploaded},
	}}

	require.NoError(t, a.Upload(context.Background(), []string{"report.pdf"}))
	assert.Contains(t, out.String(), "f1")
	assert.Contains(t, out.String(), "report.pdf")
}

func TestFiles_EmptySession(t *testing.T) {
	var out bytes.Buffer
	a := newTestApp(&out, "")
	a.files = &fakeFiles{}

	require.NoError(t, a.Files(context.Background()))
	assert.Contains(t, out.String(), "No files in this session")
}

func TestRemove_RequiresConfirmation(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		var out bytes.Buffer
		a := newTestApp(&out, "y\n")
		files := &fakeFiles{}
		a.files = files

		require.NoError(t, a.Remove(context.Background(), "f1"))
		assert.Equal(t, "f1", files.delID)
		assert.Contains(t, out.String(), "Deleted")
	})

	t.Run("declined", func(t *testing.T) {
		var out bytes.Buffer
		a := newTestApp(&out, "n\n")
		files := &fakeFiles{}
		a.files = files

		require.NoError(t, a.Remove(context.Background(), "f1"))
		assert.Empty(t, files.delID, "delete must not be called without confirmation")
		assert.Contains(t, out.String(), "Aborted")
	})
}

func TestFetch_PrintsSavedPath(t *testing.T) {
	var out bytes.Buffer
	a := newTestApp(&out, "")
	a.files = &fakeFiles{downloadPath: "downloads/report.pdf"}

	require.NoError(t, a.Fetch(context.Background(), "f1"))
	assert.Contains(t, out.String(), "downloads/report.pdf")
}

func TestCreateTask_TypePrefix(t *testing.T) {
	t.Run("explicit type", func(t *testing.T) {
		var out bytes.Buffer
		a := newTestApp(&out, "")
		tasks := &fakeTasks{created: &api.TaskCreated{TaskID: "t1", Status: models.TaskStatusPending}}
		a.tasks = tasks

		require.NoError(t, a.CreateTask(context.Background(), []string{"table", "f1", "f2"}))
		assert.Equal(t, models.TaskTypeTable, tasks.createReq.taskType)
		assert.Equal(t, []string{"f1", "f2"}, tasks.createReq.fileIDs)
	})

	t.Run("no arguments rejected without a network call", func(t *testing.T) {
		var out bytes.Buffer
		a := newTestApp(&out, "")
		tasks := &fakeTasks{}
		a.tasks = tasks

		err := a.CreateTask(context.Background(), nil)
		require.Error(t, err)
		assert.Zero(t, tasks.createCalls, "create must not be called")
	})

	t.Run("type omitted defaults to full", func(t *testing.T) {
		var out bytes.Buffer
		a := newTestApp(&out, "")
		tasks := &fakeTasks{created: &api.TaskCreated{TaskID: "t1", Status: models.TaskStatusPending}}
		a.tasks = tasks

		require.NoError(t, a.CreateTask(context.Background(), []string{"f1"}))
		assert.Equal(t, models.TaskTypeFull, tasks.createReq.taskType)
		assert.Equal(t, []string{"f1"}, tasks.createReq.fileIDs)
	})
}

func TestWatch_PrintsProgressAndFinalRecord(t *testing.T) {
	origTerm := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })

	var out bytes.Buffer
	a := newTestApp(&out, "")
	a.watcher = &fakeWatcher{
		updates: []models.Task{
			{TaskID: "t1", Status: models.TaskStatusRunning, Progress: models.TaskProgress{ProgressPercent: 50, CurrentStep: "ocr"}},
		},
		final: &models.Task{TaskID: "t1", Status: models.TaskStatusCompleted, Progress: models.TaskProgress{ProgressPercent: 100, ProcessedFiles: 1, TotalFiles: 1}},
	}

	require.NoError(t, a.Watch(context.Background(), "t1"))
	assert.Contains(t, out.String(), "running 50% ocr")
	assert.Contains(t, out.String(), "completed")
}

func TestWatch_PropagatesWatchError(t *testing.T) {
	origTerm := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })

	var out bytes.Buffer
	a := newTestApp(&out, "")
	a.watcher = &fakeWatcher{err: errors.New("gave up")}

	err := a.Watch(context.Background(), "t1")
	require.Error(t, err)
}

func TestCancelAndRetry(t *testing.T) {
	var out bytes.Buffer
	a := newTestApp(&out, "")
	tasks := &fakeTasks{retryOut: &models.Task{TaskID: "t1", Status: models.TaskStatusPending}}
	a.tasks = tasks

	require.NoError(t, a.Cancel(context.Background(), "t1"))
	assert.Equal(t, "t1", tasks.cancelID)
	assert.Contains(t, out.String(), "Cancellation requested")

	require.NoError(t, a.Retry(context.Background(), "t1"))
	assert.Contains(t, out.String(), "t1 is now pending")
}

func TestSession_SummaryFromListings(t *testing.T) {
	var out bytes.Buffer
	a := newTestApp(&out, "")
	a.files = &fakeFiles{listOut: []models.File{
		{FileID: "f1", Status: models.FileStatusCompleted},
		{FileID: "f2", Status: models.FileStatusDeleted},
	}}
	tasks := &fakeTasks{}
	a.tasks = tasks

	require.NoError(t, a.Session(context.Background()))
	assert.Contains(t, out.String(), "Session:          sess-1")
	assert.Contains(t, out.String(), "Files:            1")
}

func TestResults_PreviewAndSave(t *testing.T) {
	var out bytes.Buffer
	a := newTestApp(&out, "")
	a.results = &fakeResults{
		listOut:  []models.TaskResult{{FileID: "f1", Filename: "report.md", Size: 10, ContentType: "text/markdown"}},
		preview:  &api.ResultPreview{Content: "# Extracted", ContentType: "text/markdown"},
		savePath: "downloads/report.md",
		allPath:  "downloads/task_t1_results.zip",
	}

	require.NoError(t, a.Results(context.Background(), "t1"))
	assert.Contains(t, out.String(), "report.md")

	require.NoError(t, a.Preview(context.Background(), "t1", "f1"))
	assert.Contains(t, out.String(), "# Extracted")

	require.NoError(t, a.Save(context.Background(), "t1", "f1"))
	assert.Contains(t, out.String(), "downloads/report.md")

	require.NoError(t, a.SaveAll(context.Background(), "t1"))
	assert.Contains(t, out.String(), "task_t1_results.zip")
}
