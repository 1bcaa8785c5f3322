package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/docproc/internal/client/models"
)

// Session prints a summary of the current session. The backend keeps no
// queryable session resource, so the summary is assembled locally from the
// file and task listings scoped to the session id.
func (a *App) Session(ctx context.Context) error {
	files, err := a.files.List(ctx, a.sessionID)
	if err != nil {
		return err
	}
	tasks, err := a.tasks.List(ctx, a.sessionID)
	if err != nil {
		return err
	}

	s := models.Session{SessionID: a.sessionID, IsActive: true}
	for _, f := range files {
		s.FileIDs = append(s.FileIDs, f.FileID)
		if f.Status != models.FileStatusDeleted {
			s.UploadedFilesCount++
		}
	}
	for _, t := range tasks {
		s.TaskIDs = append(s.TaskIDs, t.TaskID)
		if t.Status == models.TaskStatusCompleted {
			s.CompletedTasksCount++
		}
	}

	fmt.Fprintf(a.out, "Session:          %s\n", s.SessionID)
	fmt.Fprintf(a.out, "Files:            %d\n", s.UploadedFilesCount)
	fmt.Fprintf(a.out, "Completed tasks:  %d (of %d)\n", s.CompletedTasksCount, len(s.TaskIDs))
	return nil
}
