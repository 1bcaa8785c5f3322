package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/docproc/internal/client/api"
	"github.com/dmitrijs2005/docproc/internal/client/models"
)

func retryable(err error) bool {
	return errors.Is(err, api.ErrUnavailable)
}

// Apply merges one push message into local state. The fragment is
// authoritative for the fields it carries; fields it omits stay untouched.
// Messages are applied in receipt order without staleness rejection. A task
// fragment carrying a terminal status stops any concurrent polling for that
// id. Unknown message types are ignored.
func (w *Watcher) Apply(msg models.Message) error {
	switch msg.Type {
	case models.MessageTypeTaskUpdate:
		var patch models.TaskPatch
		if err := json.Unmarshal(msg.Data, &patch); err != nil {
			return fmt.Errorf("decode task fragment: %w", err)
		}
		if patch.TaskID == "" {
			return errors.New("task fragment without task_id")
		}
		w.applyTaskPatch(patch)

	case models.MessageTypeFileUpdate:
		var patch models.FilePatch
		if err := json.Unmarshal(msg.Data, &patch); err != nil {
			return fmt.Errorf("decode file fragment: %w", err)
		}
		if patch.FileID == "" {
			return errors.New("file fragment without file_id")
		}
		w.applyFilePatch(patch)

	default:
		w.logger.Debug(context.Background(), "ignoring push message", "type", msg.Type)
	}
	return nil
}

func (w *Watcher) applyTaskPatch(patch models.TaskPatch) {
	w.mu.Lock()
	task := w.tasks[patch.TaskID]
	task.TaskID = patch.TaskID
	models.ApplyTaskPatch(&task, patch)
	w.tasks[patch.TaskID] = task

	var cancel context.CancelFunc
	if task.Status.Terminal() {
		cancel = w.cancels[patch.TaskID]
	}
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (w *Watcher) applyFilePatch(patch models.FilePatch) {
	w.mu.Lock()
	defer w.mu.Unlock()
	file := w.files[patch.FileID]
	file.FileID = patch.FileID
	models.ApplyFilePatch(&file, patch)
	w.files[patch.FileID] = file
}
