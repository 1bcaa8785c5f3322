package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/docproc/internal/client/models"
)

type resultsData struct {
	Results []models.TaskResult `json:"results"`
}

// ResultPreview is a textual rendering of one result, intended for
// displayable content types only.
type ResultPreview struct {
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
}

// ListResults enumerates the results of a task. Before the task completes
// the server may answer with an empty or partial list; that is passed
// through unchanged.
func (c *Client) ListResults(ctx context.Context, taskID string) ([]models.TaskResult, error) {
	var data resultsData
	if err := c.doJSON(ctx, http.MethodGet, "/results/"+taskID, nil, nil, &data); err != nil {
		return nil, err
	}
	return data.Results, nil
}

func (c *Client) PreviewResult(ctx context.Context, taskID, resultID string) (*ResultPreview, error) {
	var preview ResultPreview
	if err := c.doJSON(ctx, http.MethodGet, "/results/"+taskID+"/preview/"+resultID, nil, nil, &preview); err != nil {
		return nil, err
	}
	return &preview, nil
}

// DownloadResult fetches one result's raw bytes with the headers used for
// filename resolution.
func (c *Client) DownloadResult(ctx context.Context, taskID, resultID string) ([]byte, http.Header, error) {
	return c.doBinary(ctx, "/results/"+taskID+"/download/"+resultID)
}

// DownloadAllResults fetches a single archive bundling every result of the
// task.
func (c *Client) DownloadAllResults(ctx context.Context, taskID string) ([]byte, http.Header, error) {
	return c.doBinary(ctx, "/results/"+taskID+"/download-all")
}
