package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type fileSlot struct {
	path string
}

func NewFileSlotRepository(path string) SlotRepository {
	return &fileSlot{
		path: path,
	}
}

// Save - writes to a temp file next to the slot and renames it over the slot,
// so a failed write leaves the previous save intact.
func (that *fileSlot) Save(_ context.Context, snapshot entity.Snapshot) error {
	tmp, err := os.CreateTemp(filepath.Dir(that.path), filepath.Base(that.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temp save file: %w", err)
	}

	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint: errcheck // the file is gone after a successful rename

	if _, err = tmp.Write(EncodeSnapshot(snapshot)); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("could not write save file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("could not close save file: %w", err)
	}

	if err = os.Rename(tmpName, that.path); err != nil {
		return fmt.Errorf("could not replace save file: %w", err)
	}

	return nil
}

func (that *fileSlot) Load(_ context.Context) (entity.Snapshot, error) {
	data, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return entity.Snapshot{}, apperror.ErrSaveNotFound
	}

	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("could not read save file: %w", err)
	}

	snapshot, err := DecodeSnapshot(data)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("could not decode %s: %w", that.path, err)
	}

	return snapshot, nil
}
