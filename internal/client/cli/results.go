package cli

import (
	"context"
	"fmt"
)

// Results lists the results of a task. Before the task completes the list may
// be empty or partial.
func (a *App) Results(ctx context.Context, taskID string) error {
	results, err := a.results.List(ctx, taskID)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(a.out, "No results yet")
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(a.out, "%s  %s  (%d bytes, %s)\n", r.FileID, r.Filename, r.Size, r.ContentType)
	}
	return nil
}

// Preview prints a textual rendering of one result.
func (a *App) Preview(ctx context.Context, taskID, resultID string) error {
	preview, err := a.results.Preview(ctx, taskID, resultID)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, preview.Content)
	return nil
}

// Save downloads one result into the output directory.
func (a *App) Save(ctx context.Context, taskID, resultID string) error {
	path, err := a.results.Download(ctx, taskID, resultID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved to: %s\n", path)
	return nil
}

// SaveAll downloads the archive bundling every result of the task.
func (a *App) SaveAll(ctx context.Context, taskID string) error {
	path, err := a.results.DownloadAll(ctx, taskID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved to: %s\n", path)
	return nil
}
