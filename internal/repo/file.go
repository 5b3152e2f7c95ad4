package repo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkordes/servicelog/internal/domain"
)

// fileSlotRepo stores each slot as <dir>/<key>.json.
// Writes go to a temp file in the same directory and are renamed into place,
// so a slot is either the old value or the new one, never a partial write.
type fileSlotRepo struct {
	dir string
}

// NewFileSlotRepo constructs a SlotRepo rooted at dir, creating dir if needed.
func NewFileSlotRepo(dir string) (SlotRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("repo.NewFileSlotRepo: %w", err)
	}
	return &fileSlotRepo{dir: dir}, nil
}

func (r *fileSlotRepo) path(key string) string {
	return filepath.Join(r.dir, key+".json")
}

func (r *fileSlotRepo) Get(_ context.Context, key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", fmt.Errorf("repo.FileSlotRepo.Get: %w", err)
	}
	b, err := os.ReadFile(r.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("repo.FileSlotRepo.Get: %w", domain.ErrNotFound)
		}
		return "", fmt.Errorf("repo.FileSlotRepo.Get: %w", err)
	}
	return string(b), nil
}

func (r *fileSlotRepo) Put(_ context.Context, key, value string) error {
	if err := validateKey(key); err != nil {
		return fmt.Errorf("repo.FileSlotRepo.Put: %w", err)
	}

	tmp, err := os.CreateTemp(r.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("repo.FileSlotRepo.Put: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("repo.FileSlotRepo.Put: write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("repo.FileSlotRepo.Put: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("repo.FileSlotRepo.Put: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path(key)); err != nil {
		return fmt.Errorf("repo.FileSlotRepo.Put: rename: %w", err)
	}
	return nil
}
