package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisSlot struct {
	client *redis.Client
}

func NewRedisSlot(client *redis.Client) SlotRepository {
	return &redisSlot{
		client: client,
	}
}

func (that *redisSlot) Get(ctx context.Context, key string) (string, error) {
	response, err := that.client.Get(ctx, key).Result()

	if errors.Is(err, redis.Nil) {
		return "", ErrSlotNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get slot %s: %w", key, err)
	}

	return response, nil
}

func (that *redisSlot) Set(ctx context.Context, key, value string) error {
	if err := that.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set slot %s: %w", key, err)
	}

	return nil
}
