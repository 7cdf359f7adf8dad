package repository

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// SlotRepository keeps the single most recent saved snapshot.
// Load returns apperror.ErrSaveNotFound for an empty slot and
// apperror.ErrMalformedSave when the stored content can't be decoded.
type SlotRepository interface {
	Save(ctx context.Context, snapshot entity.Snapshot) error
	Load(ctx context.Context) (entity.Snapshot, error)
}
