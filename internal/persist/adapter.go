// Package persist serialises record lists to and from durable storage slots.
// Every save is a full rewrite of the slot; there are no partial writes.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pkordes/servicelog/internal/domain"
	"github.com/pkordes/servicelog/internal/repo"
)

// Adapter reads and writes the JSON-encoded record list held in a slot.
type Adapter struct {
	slots repo.SlotRepo
	log   *slog.Logger
}

// NewAdapter constructs an Adapter over slots. A nil logger uses slog.Default.
func NewAdapter(slots repo.SlotRepo, log *slog.Logger) *Adapter {
	if log == nil {
		log = slog.Default()
	}
	return &Adapter{slots: slots, log: log}
}

// Load returns the records held in the named slot.
// An absent, unreadable or malformed slot yields an empty list; the failure
// is logged and never returned to the caller.
func (a *Adapter) Load(ctx context.Context, key string) []domain.Record {
	raw, err := a.slots.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			a.log.WarnContext(ctx, "slot unreadable; starting empty", "slot", key, "error", err)
		}
		return []domain.Record{}
	}

	records, err := Decode(raw)
	if err != nil {
		a.log.WarnContext(ctx, "slot malformed; starting empty", "slot", key, "error", err)
		return []domain.Record{}
	}
	return records
}

// Save overwrites the named slot with the full records list.
func (a *Adapter) Save(ctx context.Context, key string, records []domain.Record) error {
	raw, err := Encode(records)
	if err != nil {
		return fmt.Errorf("persist.Adapter.Save: %w", err)
	}
	if err := a.slots.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("persist.Adapter.Save: %w", err)
	}
	return nil
}

// Encode renders records in the slot format: a JSON array, "[]" when empty.
func Encode(records []domain.Record) (string, error) {
	if records == nil {
		records = []domain.Record{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses the slot format. A JSON null decodes to an empty list.
func Decode(raw string) ([]domain.Record, error) {
	var records []domain.Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.Record{}
	}
	return records, nil
}
