package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/docproc/internal/client/api"
	"github.com/dmitrijs2005/docproc/internal/client/models"
	"github.com/dmitrijs2005/docproc/internal/filex"
	"github.com/dmitrijs2005/docproc/internal/httpx"
	"github.com/dmitrijs2005/docproc/internal/logging"
)

const (
	resultFallbackName = "result"

	// The bundled archive is not a TaskResult entity, so its name is
	// synthesized locally instead of being derived from headers.
	archiveExtension = "zip"
)

// ResultAPI is the transport surface the result service needs.
type ResultAPI interface {
	ListResults(ctx context.Context, taskID string) ([]models.TaskResult, error)
	PreviewResult(ctx context.Context, taskID, resultID string) (*api.ResultPreview, error)
	DownloadResult(ctx context.Context, taskID, resultID string) ([]byte, http.Header, error)
	DownloadAllResults(ctx context.Context, taskID string) ([]byte, http.Header, error)
}

// ResultService retrieves and materializes the outputs of completed tasks.
type ResultService struct {
	api       ResultAPI
	outputDir string
	logger    logging.Logger
}

func NewResultService(api ResultAPI, outputDir string, logger logging.Logger) *ResultService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ResultService{api: api, outputDir: outputDir, logger: logger}
}

func (s *ResultService) List(ctx context.Context, taskID string) ([]models.TaskResult, error) {
	return s.api.ListResults(ctx, taskID)
}

// Preview returns a textual rendering of one result. Binary results are the
// server's problem to reject; no client-side constraint is enforced.
func (s *ResultService) Preview(ctx context.Context, taskID, resultID string) (*api.ResultPreview, error) {
	return s.api.PreviewResult(ctx, taskID, resultID)
}

// Download persists one result under the output directory, named from the
// content-disposition header with "result" as the fallback.
func (s *ResultService) Download(ctx context.Context, taskID, resultID string) (string, error) {
	data, headers, err := s.api.DownloadResult(ctx, taskID, resultID)
	if err != nil {
		return "", err
	}

	name := httpx.FilenameFromDisposition(headers.Get("Content-Disposition"), resultFallbackName)
	path, err := filex.Save(s.outputDir, name, data)
	if err != nil {
		return "", err
	}
	s.logger.Info(ctx, "result downloaded", "task_id", taskID, "result_id", resultID, "path", path)
	return path, nil
}

// DownloadAll persists the archive bundling every result of the task as
// task_{task_id}_results.zip.
func (s *ResultService) DownloadAll(ctx context.Context, taskID string) (string, error) {
	data, _, err := s.api.DownloadAllResults(ctx, taskID)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("task_%s_results.%s", taskID, archiveExtension)
	path, err := filex.Save(s.outputDir, name, data)
	if err != nil {
		return "", err
	}
	s.logger.Info(ctx, "results archive downloaded", "task_id", taskID, "path", path)
	return path, nil
}
