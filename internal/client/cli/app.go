package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/docproc/internal/client/api"
	"github.com/dmitrijs2005/docproc/internal/client/config"
	"github.com/dmitrijs2005/docproc/internal/client/models"
	"github.com/dmitrijs2005/docproc/internal/client/services"
	"github.com/dmitrijs2005/docproc/internal/client/status"
	"github.com/dmitrijs2005/docproc/internal/logging"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// fileOps, taskOps, resultOps and taskWatcher describe the slices of the
// service layer the CLI uses. The concrete services satisfy them; tests
// provide fakes.
type fileOps interface {
	Upload(ctx context.Context, paths []string) ([]models.File, error)
	Get(ctx context.Context, fileID string) (*models.File, error)
	List(ctx context.Context, sessionID string) ([]models.File, error)
	Delete(ctx context.Context, fileID string) error
	Download(ctx context.Context, fileID string) (string, error)
}

type taskOps interface {
	Create(ctx context.Context, fileIDs []string, taskType models.TaskType, opts models.TaskOptions) (*api.TaskCreated, error)
	Get(ctx context.Context, taskID string) (*models.Task, error)
	List(ctx context.Context, sessionID string) ([]models.Task, error)
	Cancel(ctx context.Context, taskID string) error
	Retry(ctx context.Context, taskID string) (*models.Task, error)
}

type resultOps interface {
	List(ctx context.Context, taskID string) ([]models.TaskResult, error)
	Preview(ctx context.Context, taskID, resultID string) (*api.ResultPreview, error)
	Download(ctx context.Context, taskID, resultID string) (string, error)
	DownloadAll(ctx context.Context, taskID string) (string, error)
}

type taskWatcher interface {
	Watch(ctx context.Context, taskID string, onUpdate func(models.Task)) (*models.Task, error)
}

type App struct {
	config    *config.Config
	files     fileOps
	tasks     taskOps
	results   resultOps
	watcher   taskWatcher
	sessionID string
	reader    *bufio.Reader
	out       io.Writer
	logger    logging.Logger
}

// NewApp wires the full client stack from configuration. A missing session id
// is replaced with a freshly generated one, so every run groups its files and
// tasks under some session. The id is handed to the api client, which sends
// it on every request; the backend adopts it on upload and the scoped
// listings then see the same id.
func NewApp(c *config.Config) (*App, error) {
	logger := newLogger(term.IsTerminal(int(os.Stderr.Fd())))

	sessionID := c.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	apiClient := api.New(api.Config{
		BaseURL:       c.ServerBaseURL,
		SessionID:     sessionID,
		Timeout:       c.RequestTimeout,
		UploadTimeout: c.UploadTimeout,
	}, logger)

	return &App{
		config:    c,
		files:     services.NewFileService(apiClient, c.OutputDir, logger),
		tasks:     services.NewTaskService(apiClient, logger),
		results:   services.NewResultService(apiClient, c.OutputDir, logger),
		watcher:   status.NewWatcher(apiClient, c.PollInterval, logger),
		sessionID: sessionID,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		logger:    logger,
	}, nil
}

// newLogger picks the log rendering for the process: zerolog's console
// writer when stderr is an interactive terminal, slog's JSON handler when
// output is redirected or piped.
func newLogger(interactive bool) logging.Logger {
	if interactive {
		zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		return logging.NewZerologLogger(zl)
	}
	return logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
