package store_test

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pkordes/servicelog/internal/domain"
	"github.com/pkordes/servicelog/internal/store"
)

// memPersister is a hand-written test double for store.Persister.
// It keeps every saved list so tests can assert on what reached the slot.
type memPersister struct {
	mu      sync.Mutex
	slots   map[string][]domain.Record
	saves   int
	saveErr error
}

func newMemPersister() *memPersister {
	return &memPersister{slots: map[string][]domain.Record{}}
}

func (m *memPersister) Load(_ context.Context, key string) []domain.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.slots[key])
}

func (m *memPersister) Save(_ context.Context, key string, records []domain.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.slots[key] = slices.Clone(records)
	return nil
}

func (m *memPersister) slot(key string) []domain.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.slots[key])
}

// compile-time check: memPersister must satisfy store.Persister.
var _ store.Persister = (*memPersister)(nil)

// sequentialIDs returns an id generator yielding "id-1", "id-2", ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func draft(providerID, startDate string, typ domain.ServiceType) domain.Record {
	return domain.Record{
		ProviderID:         providerID,
		ServiceOrder:       "SO-" + providerID,
		TruckID:            "TRK-" + providerID,
		Odometer:           100,
		EngineHours:        10,
		StartDate:          startDate,
		EndDate:            startDate,
		Type:               typ,
		ServiceDescription: "service",
	}
}

func startDates(records []domain.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.StartDate
	}
	return out
}

func types(records []domain.Record) []domain.ServiceType {
	out := make([]domain.ServiceType, len(records))
	for i, r := range records {
		out[i] = r.Type
	}
	return out
}
