package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/docproc/internal/client/models"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

func knownTaskType(s string) bool {
	switch models.TaskType(s) {
	case models.TaskTypeFull, models.TaskTypeText, models.TaskTypeFormula, models.TaskTypeTable:
		return true
	}
	return false
}

// CreateTask submits a new processing task. The first argument is taken as
// the task type when it names one; every remaining argument is a file id.
// Omitting the type means full extraction. An empty argument list is
// rejected here, not just by the REPL usage check.
func (a *App) CreateTask(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: task [type] <file-id ...>")
	}

	taskType := models.TaskTypeFull
	fileIDs := args
	if knownTaskType(args[0]) {
		taskType = models.TaskType(args[0])
		fileIDs = args[1:]
	}

	created, err := a.tasks.Create(ctx, fileIDs, taskType, models.TaskOptions{})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Task created: %s (%s)\n", created.TaskID, created.Status)
	if created.EstimatedTime != nil {
		fmt.Fprintf(a.out, "Estimated time: %.0fs\n", *created.EstimatedTime)
	}
	return nil
}

// Tasks lists the tasks belonging to the current session.
func (a *App) Tasks(ctx context.Context) error {
	tasks, err := a.tasks.List(ctx, a.sessionID)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks in this session")
		return nil
	}
	for _, t := range tasks {
		fmt.Fprintf(a.out, "%s  %-10s  %-8s  %.0f%%  files=%d\n",
			t.TaskID, t.Status, t.TaskType, t.Progress.ProgressPercent, len(t.FileIDs))
	}
	return nil
}

// TaskStatus prints the full record of a single task.
func (a *App) TaskStatus(ctx context.Context, taskID string) error {
	t, err := a.tasks.Get(ctx, taskID)
	if err != nil {
		return err
	}
	a.printTask(t)
	return nil
}

func (a *App) printTask(t *models.Task) {
	fmt.Fprintf(a.out, "ID:        %s\n", t.TaskID)
	fmt.Fprintf(a.out, "Type:      %s\n", t.TaskType)
	fmt.Fprintf(a.out, "Status:    %s\n", t.Status)
	fmt.Fprintf(a.out, "Progress:  %.0f%% (%d/%d files)\n",
		t.Progress.ProgressPercent, t.Progress.ProcessedFiles, t.Progress.TotalFiles)
	if t.Progress.CurrentStep != "" {
		fmt.Fprintf(a.out, "Step:      %s\n", t.Progress.CurrentStep)
	}
	if t.ErrorMessage != "" {
		fmt.Fprintf(a.out, "Error:     %s\n", t.ErrorMessage)
	}
	if t.Summary != nil {
		fmt.Fprintf(a.out, "Summary:   %d processed, %d failed\n",
			t.Summary.ProcessedFiles, t.Summary.FailedFiles)
	}
}

// Watch polls the task until it reaches a terminal status, rendering progress
// as it changes. On a terminal the progress line is rewritten in place;
// otherwise each update is printed on its own line.
func (a *App) Watch(ctx context.Context, taskID string) error {
	interactive := isTerminal()

	task, err := a.watcher.Watch(ctx, taskID, func(t models.Task) {
		if interactive {
			fmt.Fprintf(a.out, "\r%-10s %3.0f%%  %s", t.Status, t.Progress.ProgressPercent, t.Progress.CurrentStep)
			return
		}
		fmt.Fprintf(a.out, "%s %.0f%% %s\n", t.Status, t.Progress.ProgressPercent, t.Progress.CurrentStep)
	})
	if interactive {
		fmt.Fprintln(a.out)
	}
	if err != nil {
		return err
	}

	a.printTask(task)
	return nil
}

// Cancel requests cancellation of a task.
func (a *App) Cancel(ctx context.Context, taskID string) error {
	if err := a.tasks.Cancel(ctx, taskID); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Cancellation requested")
	return nil
}

// Retry re-submits a failed task and prints the status the server settled on.
func (a *App) Retry(ctx context.Context, taskID string) error {
	task, err := a.tasks.Retry(ctx, taskID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Task %s is now %s\n", task.TaskID, task.Status)
	return nil
}
