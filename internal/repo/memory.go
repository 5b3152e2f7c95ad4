package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkordes/servicelog/internal/domain"
)

// memorySlotRepo keeps slots in a map. Contents are lost when the process exits.
type memorySlotRepo struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemorySlotRepo constructs an empty in-memory SlotRepo.
func NewMemorySlotRepo() SlotRepo {
	return &memorySlotRepo{slots: make(map[string]string)}
}

func (r *memorySlotRepo) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.slots[key]
	if !ok {
		return "", fmt.Errorf("repo.MemorySlotRepo.Get: %w", domain.ErrNotFound)
	}
	return v, nil
}

func (r *memorySlotRepo) Put(_ context.Context, key, value string) error {
	if err := validateKey(key); err != nil {
		return fmt.Errorf("repo.MemorySlotRepo.Put: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[key] = value
	return nil
}
