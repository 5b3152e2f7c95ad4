package service_test

import (
	"context"

	"github.com/pkordes/servicelog/internal/domain"
	"github.com/pkordes/servicelog/internal/service"
)

// ---- mock stores -----------------------------------------------------------

// mockRecordStore is a hand-written test double for service.RecordStore.
// Unset funcs fall back to zero values so each test only wires what it uses.
type mockRecordStore struct {
	list     func() []domain.Record
	length   func() int
	current  func() (domain.Record, bool)
	sel      func(id string) bool
	create   func(ctx context.Context, r domain.Record) (domain.Record, error)
	update   func(ctx context.Context, patch domain.RecordPatch) (domain.Record, bool, error)
	delete   func(ctx context.Context, providerID string) (int, error)
	clearAll func(ctx context.Context) error
}

func (m *mockRecordStore) List() []domain.Record {
	if m.list == nil {
		return nil
	}
	return m.list()
}
func (m *mockRecordStore) Len() int {
	if m.length == nil {
		return 0
	}
	return m.length()
}
func (m *mockRecordStore) Current() (domain.Record, bool) {
	if m.current == nil {
		return domain.Record{}, false
	}
	return m.current()
}
func (m *mockRecordStore) Select(id string) bool {
	if m.sel == nil {
		return false
	}
	return m.sel(id)
}
func (m *mockRecordStore) Create(ctx context.Context, r domain.Record) (domain.Record, error) {
	return m.create(ctx, r)
}
func (m *mockRecordStore) Update(ctx context.Context, patch domain.RecordPatch) (domain.Record, bool, error) {
	return m.update(ctx, patch)
}
func (m *mockRecordStore) Delete(ctx context.Context, providerID string) (int, error) {
	return m.delete(ctx, providerID)
}
func (m *mockRecordStore) ClearAll(ctx context.Context) error {
	return m.clearAll(ctx)
}

// mockDraftStore extends mockRecordStore with the draft-only operations.
type mockDraftStore struct {
	mockRecordStore
	sortByDate  func(ctx context.Context) ([]domain.Record, error)
	sortByType  func(ctx context.Context) ([]domain.Record, error)
	filtered    func() []domain.Record
	searchQuery string
	setQueries  []string
}

func (m *mockDraftStore) SortByDate(ctx context.Context) ([]domain.Record, error) {
	return m.sortByDate(ctx)
}
func (m *mockDraftStore) SortByType(ctx context.Context) ([]domain.Record, error) {
	return m.sortByType(ctx)
}
func (m *mockDraftStore) SortToggles() (bool, bool) { return true, true }
func (m *mockDraftStore) SetSearchQuery(query string) {
	m.searchQuery = query
	m.setQueries = append(m.setQueries, query)
}
func (m *mockDraftStore) SearchQuery() string { return m.searchQuery }
func (m *mockDraftStore) Filtered() []domain.Record {
	if m.filtered == nil {
		return nil
	}
	return m.filtered()
}

// compile-time checks: mocks must satisfy the service interfaces.
var (
	_ service.RecordStore = (*mockRecordStore)(nil)
	_ service.DraftStore  = (*mockDraftStore)(nil)
)

// ---- helpers ---------------------------------------------------------------

func validRecord() domain.Record {
	return domain.Record{
		ProviderID:         "PRV-1",
		ServiceOrder:       "SO-100",
		TruckID:            "TRK-7",
		Odometer:           120500,
		EngineHours:        3400.5,
		StartDate:          "2024-05-01",
		EndDate:            "2024-05-02",
		Type:               domain.ServicePlanned,
		ServiceDescription: "Oil change",
	}
}

func validForm() domain.ServiceLogForm {
	return domain.ServiceLogForm{
		ProviderID:         "PRV-1",
		ServiceOrder:       "SO-100",
		TruckID:            "TRK-7",
		Odometer:           "120500",
		EngineHours:        "3400.5",
		StartDate:          "2024-05-01",
		EndDate:            "2024-05-02",
		Type:               "planned",
		ServiceDescription: "Oil change",
	}
}
