package services

import (
	"classifieds/models"
	"classifieds/utils"
	"context"
	"log/slog"
)

// replaceImage writes file under a fresh name, persists that name through
// persist and only then removes the previous file. When persist fails the
// new file is removed again and the previous one is left untouched. Once the
// new name is persisted the swap has happened, so failing to remove the
// previous file only leaves an orphan behind.
func replaceImage(ctx context.Context, store ImageStore, file models.UploadedFile, previous *string, persist func(name string) error) (string, error) {
	name := utils.NewImageFileName(file.OriginalName())

	if err := store.Save(ctx, name, file.Bytes()); err != nil {
		return "", imageError("write", name, err)
	}

	if err := persist(name); err != nil {
		if rmErr := store.Delete(ctx, name); rmErr != nil {
			slog.WarnContext(ctx, "failed to remove orphaned image", "name", name, "error", rmErr)
		}
		return "", err
	}

	if previous != nil && *previous != "" && *previous != name {
		if err := store.Delete(ctx, *previous); err != nil {
			slog.WarnContext(ctx, "failed to remove replaced image", "name", *previous, "error", imageError("delete", *previous, err))
		}
	}

	return name, nil
}
