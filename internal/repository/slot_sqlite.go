package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type sqliteSlot struct {
	conn *sql.DB
	name string
}

// NewSQLiteSlotRepository expects the save_slots table created by storage.Storage.Init.
func NewSQLiteSlotRepository(conn *sql.DB, name string) SlotRepository {
	return &sqliteSlot{
		conn: conn,
		name: name,
	}
}

func (that *sqliteSlot) Save(ctx context.Context, snapshot entity.Snapshot) error {
	query := `INSERT INTO save_slots (name, payload) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`

	_, err := that.conn.ExecContext(ctx, query, that.name, string(EncodeSnapshot(snapshot)))
	if err != nil {
		return fmt.Errorf("can't save slot: %w", err)
	}

	return nil
}

func (that *sqliteSlot) Load(ctx context.Context) (entity.Snapshot, error) {
	query := `SELECT payload FROM save_slots WHERE name = ?`

	var payload string

	err := that.conn.QueryRowContext(ctx, query, that.name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Snapshot{}, apperror.ErrSaveNotFound
	}
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("can't find slot: %w", err)
	}

	snapshot, err := DecodeSnapshot([]byte(payload))
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("can't decode slot %s: %w", that.name, err)
	}

	return snapshot, nil
}
