package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/servicelog/internal/domain"
	"github.com/pkordes/servicelog/internal/handler"
	"github.com/pkordes/servicelog/internal/service"
)

// mockDraftServicer is a test double for handler.DraftServicer.
// Set only the method fields your test needs.
type mockDraftServicer struct {
	create       func(ctx context.Context, r domain.Record) (domain.Record, error)
	list         func() []domain.Record
	listFiltered func(p domain.PaginationParams) ([]domain.Record, int)
	current      func() (domain.Record, error)
	sel          func(id string) (domain.Record, error)
	update       func(ctx context.Context, patch domain.RecordPatch) (domain.Record, error)
	delete       func(ctx context.Context, providerID string) (int, error)
	clearAll     func(ctx context.Context) error
	sortByDate   func(ctx context.Context) ([]domain.Record, error)
	sortByType   func(ctx context.Context) ([]domain.Record, error)
	searchInput  func(query string) service.SearchState
	search       func() service.SearchState
}

func (m *mockDraftServicer) Create(ctx context.Context, r domain.Record) (domain.Record, error) {
	return m.create(ctx, r)
}
func (m *mockDraftServicer) List() []domain.Record { return m.list() }
func (m *mockDraftServicer) ListFiltered(p domain.PaginationParams) ([]domain.Record, int) {
	return m.listFiltered(p)
}
func (m *mockDraftServicer) Current() (domain.Record, error)         { return m.current() }
func (m *mockDraftServicer) Select(id string) (domain.Record, error) { return m.sel(id) }
func (m *mockDraftServicer) Update(ctx context.Context, p domain.RecordPatch) (domain.Record, error) {
	return m.update(ctx, p)
}
func (m *mockDraftServicer) Delete(ctx context.Context, providerID string) (int, error) {
	return m.delete(ctx, providerID)
}
func (m *mockDraftServicer) ClearAll(ctx context.Context) error { return m.clearAll(ctx) }
func (m *mockDraftServicer) SortByDate(ctx context.Context) ([]domain.Record, error) {
	return m.sortByDate(ctx)
}
func (m *mockDraftServicer) SortByType(ctx context.Context) ([]domain.Record, error) {
	return m.sortByType(ctx)
}
func (m *mockDraftServicer) SearchInput(q string) service.SearchState { return m.searchInput(q) }
func (m *mockDraftServicer) Search() service.SearchState {
	if m.search == nil {
		return service.SearchState{}
	}
	return m.search()
}

// mockFormServicer is a test double for handler.FormServicer.
type mockFormServicer struct {
	submit        func(ctx context.Context, form domain.ServiceLogForm) (domain.Record, string, error)
	list          func() []domain.Record
	label         func() string
	update        func(ctx context.Context, patch domain.RecordPatch) (domain.Record, error)
	delete        func(ctx context.Context, providerID string) (int, error)
	deleteCurrent func(ctx context.Context) (string, error)
	clearAll      func(ctx context.Context) (string, error)
}

func (m *mockFormServicer) Submit(ctx context.Context, f domain.ServiceLogForm) (domain.Record, string, error) {
	return m.submit(ctx, f)
}
func (m *mockFormServicer) List() []domain.Record { return m.list() }
func (m *mockFormServicer) Label() string         { return m.label() }
func (m *mockFormServicer) Update(ctx context.Context, p domain.RecordPatch) (domain.Record, error) {
	return m.update(ctx, p)
}
func (m *mockFormServicer) Delete(ctx context.Context, providerID string) (int, error) {
	return m.delete(ctx, providerID)
}
func (m *mockFormServicer) DeleteCurrent(ctx context.Context) (string, error) {
	return m.deleteCurrent(ctx)
}
func (m *mockFormServicer) ClearAll(ctx context.Context) (string, error) { return m.clearAll(ctx) }

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.DraftServicer = (*mockDraftServicer)(nil)
	_ handler.FormServicer  = (*mockFormServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into its chi router.
// This mirrors how main.go wires it in production.
func newHTTPHandler(drafts handler.DraftServicer, forms handler.FormServicer) http.Handler {
	return handler.NewServer(drafts, forms, []byte("openapi: 3.0.3\n"), discardLogger()).Routes()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func recordFixture() domain.Record {
	return domain.Record{
		ID:                 "0190a1b2-0000-7000-8000-000000000001",
		ProviderID:         "PRV-1",
		ServiceOrder:       "SO-100",
		TruckID:            "TRK-7",
		Odometer:           120500,
		EngineHours:        3400.5,
		StartDate:          "2024-05-01",
		EndDate:            "2024-05-02",
		Type:               domain.ServiceEmergency,
		ServiceDescription: "Brake repair",
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decode[T any](t *testing.T, body *bytes.Buffer) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(body).Decode(&v))
	return v
}
