// Package repo contains all durable storage access for the service logbook.
// Storage is a set of named string-valued slots; each backend has its own file
// with a constructor returning SlotRepo.
// No business logic lives here, only reads, writes and type mapping.
package repo

import (
	"context"
	"fmt"
	"strings"
)

// SlotRepo is a durable key-value store of string slots.
// The persistence layer depends on this interface, not on a concrete backend,
// which allows stores to be unit-tested against the in-memory implementation.
type SlotRepo interface {
	// Get returns the value held in the named slot.
	// Returns domain.ErrNotFound if the slot has never been written.
	Get(ctx context.Context, key string) (string, error)

	// Put overwrites the named slot with value, creating it if needed.
	Put(ctx context.Context, key, value string) error
}

// validateKey rejects keys that cannot be used as a slot name on every backend.
// The file backend maps keys to file names, so path separators are refused.
func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("slot key is empty")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("slot key %q is not a plain name", key)
	}
	return nil
}
