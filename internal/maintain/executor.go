package maintain

import (
	"context"

	"cloudtidy/internal/models"
	"cloudtidy/internal/providers"
	"cloudtidy/internal/remote"
)

// Executor runs a plan against the backend, one item at a time. A failing
// item is logged and skipped; it never blocks the rest of the batch, and
// nothing is rolled back.
type Executor struct {
	remote   remote.Remote
	logger   providers.Logger
	progress providers.ProgressFactory
}

func NewExecutor(rem remote.Remote, logger providers.Logger, progress providers.ProgressFactory) *Executor {
	return &Executor{
		remote:   rem,
		logger:   logger,
		progress: progress,
	}
}

// DeleteFiles processes the deletion list and returns the success count.
// Dry-run only logs what would happen and counts every item.
func (e *Executor) DeleteFiles(ctx context.Context, files []models.FileRecord, dryRun bool) int {
	if len(files) == 0 {
		return 0
	}

	bar := e.progress("Deleting files", len(files))
	defer bar.Finish()

	count := 0
	for _, f := range files {
		if dryRun {
			e.logger.Infof(providers.TypeMutation, "[DRY RUN] Would delete: %s", f.Name)
			count++
		} else if err := e.remote.Delete(ctx, f.ID); err != nil {
			e.logger.Errorf(providers.TypeMutation, "Error deleting %s: %s", f.Name, err)
		} else {
			e.logger.Infof(providers.TypeMutation, "Deleted: %s", f.Name)
			count++
		}
		bar.Add(1)
	}
	return count
}

// RenameFiles processes the rename plan and returns the success count.
func (e *Executor) RenameFiles(ctx context.Context, entries []models.RenamePlanEntry, dryRun bool) int {
	if len(entries) == 0 {
		return 0
	}

	bar := e.progress("Renaming files", len(entries))
	defer bar.Finish()

	count := 0
	for _, entry := range entries {
		if dryRun {
			e.logger.Infof(providers.TypeMutation, "[DRY RUN] Would rename: %s -> %s", entry.OriginalName, entry.NewName)
			count++
		} else if err := e.remote.Rename(ctx, entry.FileID, entry.NewName); err != nil {
			e.logger.Errorf(providers.TypeMutation, "Error renaming %s: %s", entry.OriginalName, err)
		} else {
			e.logger.Infof(providers.TypeMutation, "Renamed: %s -> %s", entry.OriginalName, entry.NewName)
			count++
		}
		bar.Add(1)
	}
	return count
}
