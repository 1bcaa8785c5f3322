package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/docproc/internal/client/models"
)

// uploadFieldName is the multipart field the backend reads the files from.
const uploadFieldName = "files"

// UploadFile is one binary blob queued for upload, carrying its filename and
// MIME type.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type filesData struct {
	Files []models.File `json:"files"`
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// UploadFiles sends the blobs as one multipart request under the fixed field
// name, using the extended upload timeout. The server answers with one File
// record per accepted blob, each initially in status "uploaded"; partial
// failures are whatever the server reports, never invented here.
func (c *Client) UploadFiles(ctx context.Context, files []UploadFile) ([]models.File, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename="%s"`,
			uploadFieldName, quoteEscaper.Replace(f.Name)))
		if f.ContentType != "" {
			h.Set("Content-Type", f.ContentType)
		}
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, fmt.Errorf("create multipart part: %w", err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, fmt.Errorf("write multipart part: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/files/upload", nil), &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.setSessionHeader(req)

	resp, err := c.upload.Do(req)
	if err != nil {
		return nil, mapTransportError(err)
	}
	defer resp.Body.Close()

	var data filesData
	if err := decodeEnvelope(resp, &data); err != nil {
		return nil, err
	}
	return data.Files, nil
}

// GetFile fetches one file record. Unknown or deleted ids surface as
// ErrNotFound.
func (c *Client) GetFile(ctx context.Context, fileID string) (*models.File, error) {
	var file models.File
	if err := c.doJSON(ctx, http.MethodGet, "/files/"+fileID, nil, nil, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// ListFiles enumerates files, optionally scoped to a session.
func (c *Client) ListFiles(ctx context.Context, sessionID string) ([]models.File, error) {
	query := url.Values{}
	if sessionID != "" {
		query.Set("session_id", sessionID)
	}
	var data filesData
	if err := c.doJSON(ctx, http.MethodGet, "/files", query, nil, &data); err != nil {
		return nil, err
	}
	return data.Files, nil
}

// DeleteFile removes a file. A repeated delete may answer NotFound; callers
// decide whether that is success-equivalent.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/files/"+fileID, nil, nil, nil)
}

// DownloadFile fetches the raw file bytes together with the response headers
// used for filename resolution.
func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, http.Header, error) {
	return c.doBinary(ctx, "/files/"+fileID+"/download")
}
