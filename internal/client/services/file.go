package services

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/docproc/internal/client/api"
	"github.com/dmitrijs2005/docproc/internal/client/models"
	"github.com/dmitrijs2005/docproc/internal/filex"
	"github.com/dmitrijs2005/docproc/internal/httpx"
	"github.com/dmitrijs2005/docproc/internal/logging"
)

// downloadFallbackName is used when the server supplies no usable
// content-disposition filename.
const downloadFallbackName = "download"

// FileAPI is the transport surface the file service needs. *api.Client
// satisfies it; tests provide fakes.
type FileAPI interface {
	UploadFiles(ctx context.Context, files []api.UploadFile) ([]models.File, error)
	GetFile(ctx context.Context, fileID string) (*models.File, error)
	ListFiles(ctx context.Context, sessionID string) ([]models.File, error)
	DeleteFile(ctx context.Context, fileID string) error
	DownloadFile(ctx context.Context, fileID string) ([]byte, http.Header, error)
}

// FileService is the file lifecycle client: upload, enumerate, fetch, delete
// and download-to-disk.
type FileService struct {
	api       FileAPI
	outputDir string
	logger    logging.Logger
}

func NewFileService(api FileAPI, outputDir string, logger logging.Logger) *FileService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &FileService{api: api, outputDir: outputDir, logger: logger}
}

// Upload reads the named files off disk and sends them in one multipart
// batch. The MIME type is derived from the extension, falling back to
// application/octet-stream.
func (s *FileService) Upload(ctx context.Context, paths []string) ([]models.File, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}

	blobs := make([]api.UploadFile, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		contentType := mime.TypeByExtension(filepath.Ext(path))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		blobs = append(blobs, api.UploadFile{
			Name:        filepath.Base(path),
			ContentType: contentType,
			Data:        data,
		})
	}

	files, err := s.api.UploadFiles(ctx, blobs)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "files uploaded", "count", len(files))
	return files, nil
}

func (s *FileService) Get(ctx context.Context, fileID string) (*models.File, error) {
	return s.api.GetFile(ctx, fileID)
}

func (s *FileService) List(ctx context.Context, sessionID string) ([]models.File, error) {
	return s.api.ListFiles(ctx, sessionID)
}

// Delete removes a file. Deleting an already-deleted file answers NotFound
// on the wire; that is success-equivalent here, not an error to escalate.
func (s *FileService) Delete(ctx context.Context, fileID string) error {
	err := s.api.DeleteFile(ctx, fileID)
	if errors.Is(err, api.ErrNotFound) {
		s.logger.Debug(ctx, "file already gone", "file_id", fileID)
		return nil
	}
	return err
}

// Download fetches the file's bytes and persists them under the output
// directory, naming the file from the content-disposition header with
// "download" as the fallback. Returns the saved path.
func (s *FileService) Download(ctx context.Context, fileID string) (string, error) {
	data, headers, err := s.api.DownloadFile(ctx, fileID)
	if err != nil {
		return "", err
	}

	name := httpx.FilenameFromDisposition(headers.Get("Content-Disposition"), downloadFallbackName)
	path, err := filex.Save(s.outputDir, name, data)
	if err != nil {
		return "", err
	}
	s.logger.Info(ctx, "file downloaded", "file_id", fileID, "path", path)
	return path, nil
}
