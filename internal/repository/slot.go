package repository

import (
	"context"
	"errors"
)

var ErrSlotNotFound = errors.New("slot not found")

// SlotRepository is a durable string slot addressed by key.
type SlotRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
