package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListResults(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/results/t1", r.URL.Path)
		w.Write([]byte(`{"success":true,"message":"ok","data":{"results":[
			{"file_id":"f1","filename":"a.md","content_type":"text/markdown","size":10,"download_url":"/results/t1/download/f1"},
			{"file_id":"f2","filename":"b.md","content_type":"text/markdown","size":20,"download_url":"/results/t1/download/f2"}]}}`))
	}))

	results, err := c.ListResults(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a.md", results[0].Filename)
	assert.Equal(t, "/results/t1/download/f2", results[1].DownloadURL)
}

func TestPreviewResult(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/results/t1/preview/f1", r.URL.Path)
		w.Write([]byte(`{"success":true,"message":"ok","data":{"content":"# Title","content_type":"text/markdown"}}`))
	}))

	preview, err := c.PreviewResult(context.Background(), "t1", "f1")
	require.NoError(t, err)
	assert.Equal(t, "# Title", preview.Content)
	assert.Equal(t, "text/markdown", preview.ContentType)
}

func TestDownloadResultPaths(t *testing.T) {
	var paths []string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte("bytes"))
	}))

	_, _, err := c.DownloadResult(context.Background(), "t1", "r1")
	require.NoError(t, err)
	_, _, err = c.DownloadAllResults(context.Background(), "t1")
	require.NoError(t, err)

	assert.Equal(t, []string{"/results/t1/download/r1", "/results/t1/download-all"}, paths)
}
