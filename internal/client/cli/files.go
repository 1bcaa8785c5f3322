package cli

import (
	"context"
	"fmt"
	"strings"
)

// Upload sends the named local files to the server in one batch and prints
// the server-assigned ids.
func (a *App) Upload(ctx context.Context, paths []string) error {
	files, err := a.files.Upload(ctx, paths)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintf(a.out, "%s  %s  (%d bytes, %s)\n", f.FileID, f.OriginalFilename, f.Size, f.Status)
	}
	return nil
}

// Files lists the files belonging to the current session.
func (a *App) Files(ctx context.Context) error {
	files, err := a.files.List(ctx, a.sessionID)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(a.out, "No files in this session")
		return nil
	}
	for _, f := range files {
		fmt.Fprintf(a.out, "%s  %-12s  %s\n", f.FileID, f.Status, f.OriginalFilename)
	}
	return nil
}

// File prints the full record of a single file.
func (a *App) File(ctx context.Context, fileID string) error {
	f, err := a.files.Get(ctx, fileID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "ID:        %s\n", f.FileID)
	fmt.Fprintf(a.out, "Name:      %s\n", f.OriginalFilename)
	fmt.Fprintf(a.out, "Size:      %d\n", f.Size)
	fmt.Fprintf(a.out, "Type:      %s\n", f.ContentType)
	fmt.Fprintf(a.out, "Status:    %s\n", f.Status)
	fmt.Fprintf(a.out, "Uploaded:  %s\n", f.UploadTime)
	if f.ErrorMessage != "" {
		fmt.Fprintf(a.out, "Error:     %s\n", f.ErrorMessage)
	}
	if f.ProcessingTaskID != "" {
		fmt.Fprintf(a.out, "Task:      %s\n", f.ProcessingTaskID)
	}
	return nil
}

// Remove deletes a file after an interactive confirmation.
func (a *App) Remove(ctx context.Context, fileID string) error {
	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Delete file %s? (y/N)", fileID), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		fmt.Fprintln(a.out, "Aborted")
		return nil
	}
	if err := a.files.Delete(ctx, fileID); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

// Fetch downloads a file into the output directory.
func (a *App) Fetch(ctx context.Context, fileID string) error {
	path, err := a.files.Download(ctx, fileID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved to: %s\n", path)
	return nil
}
