package repository

import (
	"context"
	"sync"
)

type memorySlot struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemorySlot keeps values for the lifetime of the process only.
func NewMemorySlot() SlotRepository {
	return &memorySlot{
		values: make(map[string]string),
	}
}

func (that *memorySlot) Get(_ context.Context, key string) (string, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	value, ok := that.values[key]
	if !ok {
		return "", ErrSlotNotFound
	}

	return value, nil
}

func (that *memorySlot) Set(_ context.Context, key, value string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.values[key] = value

	return nil
}
