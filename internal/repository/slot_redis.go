package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type redisSlot struct {
	client *redis.Client
	key    string
}

func NewRedisSlotRepository(client *redis.Client, key string) SlotRepository {
	return &redisSlot{
		client: client,
		key:    key,
	}
}

func (that *redisSlot) Save(ctx context.Context, snapshot entity.Snapshot) error {
	err := that.client.Set(ctx, that.key, EncodeSnapshot(snapshot), 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set save slot: %w", err)
	}

	return nil
}

func (that *redisSlot) Load(ctx context.Context) (entity.Snapshot, error) {
	response, err := that.client.Get(ctx, that.key).Bytes()

	if errors.Is(err, redis.Nil) {
		return entity.Snapshot{}, apperror.ErrSaveNotFound
	}

	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to get save slot: %w", err)
	}

	snapshot, err := DecodeSnapshot(response)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to decode save slot %s: %w", that.key, err)
	}

	return snapshot, nil
}
