// Package store holds the in-memory record lists for drafts and service logs.
// Each store is an explicit object built once at startup, hydrated from its
// durable slot, and injected into whatever consumes it. Every mutation is
// computed on a copy, written through the Persister, and only then committed,
// so memory and the slot never disagree.
package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/servicelog/internal/domain"
)

// Persister loads and saves the full record list of a slot.
// *persist.Adapter satisfies it.
type Persister interface {
	Load(ctx context.Context, key string) []domain.Record
	Save(ctx context.Context, key string, records []domain.Record) error
}

// Option configures a store at construction.
type Option func(*base)

// WithIDFunc overrides the id generator used by Create.
func WithIDFunc(fn func() string) Option {
	return func(b *base) { b.newID = fn }
}

// NewID returns a time-ordered (UUIDv7) identifier.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// base is the record list shared by both stores. Its exported methods are
// promoted onto DraftStore and ServiceLogStore.
type base struct {
	mu      sync.Mutex
	key     string
	persist Persister
	newID   func() string

	records   []domain.Record
	currentID string // "" when nothing is current
}

// hydrate configures b and loads its records from the slot named key.
func (b *base) hydrate(ctx context.Context, key string, p Persister, opts []Option) error {
	b.key, b.persist, b.newID = key, p, NewID
	for _, opt := range opts {
		opt(b)
	}

	repaired, changed := b.repairIDs(p.Load(ctx, key))
	if changed {
		if err := p.Save(ctx, key, repaired); err != nil {
			return fmt.Errorf("store.hydrate %s: %w", key, err)
		}
	}
	b.records = repaired
	return nil
}

// repairIDs gives every record without an id, or with an id already seen,
// a fresh one. Slots written by older clients may hold either.
func (b *base) repairIDs(records []domain.Record) ([]domain.Record, bool) {
	out := slices.Clone(records)
	seen := make(map[string]bool, len(out))
	changed := false
	for i := range out {
		if out[i].ID == "" || seen[out[i].ID] {
			out[i].ID = b.freshID(seen)
			changed = true
		}
		seen[out[i].ID] = true
	}
	return out, changed
}

func (b *base) freshID(taken map[string]bool) string {
	for {
		if id := b.newID(); id != "" && !taken[id] {
			return id
		}
	}
}

// commit persists next and, on success, makes it the current list.
// Caller holds b.mu.
func (b *base) commit(ctx context.Context, op string, next []domain.Record) error {
	if err := b.persist.Save(ctx, b.key, next); err != nil {
		return fmt.Errorf("store.%s: %w", op, err)
	}
	b.records = next
	return nil
}

func (b *base) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(b.records, func(r domain.Record) bool { return r.ID == id })
}

// List returns a copy of the records in their current order.
func (b *base) List() []domain.Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.records)
}

// Len returns the number of records.
func (b *base) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.records)
}

// Current returns the most recently created or selected record.
// It is looked up by id on every call, so it always reflects the latest update.
func (b *base) Current() (domain.Record, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexOf(b.currentID)
	if i < 0 {
		return domain.Record{}, false
	}
	return b.records[i], true
}

// Select makes the record with id current. Unknown ids leave current unchanged.
func (b *base) Select(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.indexOf(id) < 0 {
		return false
	}
	b.currentID = id
	return true
}

// Create appends r and makes it current. r keeps its id when that id is
// non-empty and unused; otherwise a fresh one is assigned. Content is never
// deduplicated.
func (b *base) Create(ctx context.Context, r domain.Record) (domain.Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if r.ID == "" || b.indexOf(r.ID) >= 0 {
		taken := make(map[string]bool, len(b.records))
		for _, existing := range b.records {
			taken[existing.ID] = true
		}
		r.ID = b.freshID(taken)
	}

	next := append(slices.Clone(b.records), r)
	if err := b.commit(ctx, "Create", next); err != nil {
		return domain.Record{}, err
	}
	b.currentID = r.ID
	return r, nil
}

// Update merges patch over the record with the same id, in place.
// Unknown ids are a silent no-op: ok is false and nothing is saved.
func (b *base) Update(ctx context.Context, patch domain.RecordPatch) (domain.Record, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(patch.ID)
	if i < 0 {
		return domain.Record{}, false, nil
	}

	next := slices.Clone(b.records)
	next[i] = patch.Apply(next[i])
	if err := b.commit(ctx, "Update", next); err != nil {
		return domain.Record{}, false, err
	}
	return next[i], true, nil
}

// Delete removes every record whose ProviderID equals providerID.
//
// Note the key: ProviderID is not unique, so one call can remove several
// unrelated records. Current is cleared if its record was among them.
// A providerID that matches nothing still rewrites the slot.
func (b *base) Delete(ctx context.Context, providerID string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next := make([]domain.Record, 0, len(b.records))
	clearCurrent := false
	for _, r := range b.records {
		if r.ProviderID == providerID {
			if r.ID == b.currentID {
				clearCurrent = true
			}
			continue
		}
		next = append(next, r)
	}

	removed := len(b.records) - len(next)
	if err := b.commit(ctx, "Delete", next); err != nil {
		return 0, err
	}
	if clearCurrent {
		b.currentID = ""
	}
	return removed, nil
}

// ClearAll empties the store and clears current.
func (b *base) ClearAll(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.commit(ctx, "ClearAll", []domain.Record{}); err != nil {
		return err
	}
	b.currentID = ""
	return nil
}
