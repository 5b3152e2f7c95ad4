package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pkordes/servicelog/internal/domain"
	"github.com/pkordes/servicelog/internal/search"
)

// SearchState is the draft search box as a client sees it.
// Input is echoed immediately; Committed is what the table is filtered by.
type SearchState struct {
	Input     string `json:"input"`
	Committed string `json:"committed"`
	Pending   bool   `json:"pending"`
}

// DraftService implements business logic for draft operations.
// Search input is debounced before it reaches the store, so a burst of
// keystrokes commits only its last value.
type DraftService struct {
	drafts   DraftStore
	debounce *search.Debouncer
	log      *slog.Logger

	mu    sync.Mutex
	input string
}

// NewDraftService constructs a DraftService over drafts. Search input is
// committed after wait has passed without a newer keystroke.
func NewDraftService(drafts DraftStore, wait time.Duration, log *slog.Logger) *DraftService {
	if log == nil {
		log = slog.Default()
	}
	s := &DraftService{drafts: drafts, log: log, input: drafts.SearchQuery()}
	s.debounce = search.NewDebouncer(wait, s.commitSearch)
	return s
}

// Create validates the draft then appends it and makes it current.
// Returns domain.ErrValidation if any field is missing or a number is not positive.
func (s *DraftService) Create(ctx context.Context, r domain.Record) (domain.Record, error) {
	if err := domain.ValidateRecord(r); err != nil {
		return domain.Record{}, err
	}
	result, err := s.drafts.Create(ctx, r)
	if err != nil {
		return domain.Record{}, fmt.Errorf("service.DraftService.Create: %w", err)
	}
	return result, nil
}

// List returns every draft in store order.
func (s *DraftService) List() []domain.Record {
	return s.drafts.List()
}

// ListFiltered returns one page of the drafts matching the committed search
// query, plus the total number of matches.
func (s *DraftService) ListFiltered(p domain.PaginationParams) ([]domain.Record, int) {
	matched := s.drafts.Filtered()
	start, end := p.Window(len(matched))
	page := make([]domain.Record, end-start)
	copy(page, matched[start:end])
	return page, len(matched)
}

// Current returns the current draft.
// Returns domain.ErrNotFound when nothing is current.
func (s *DraftService) Current() (domain.Record, error) {
	r, ok := s.drafts.Current()
	if !ok {
		return domain.Record{}, fmt.Errorf("service.DraftService.Current: %w", domain.ErrNotFound)
	}
	return r, nil
}

// Select makes the draft with id current.
// Returns domain.ErrNotFound for unknown ids.
func (s *DraftService) Select(id string) (domain.Record, error) {
	if !s.drafts.Select(id) {
		return domain.Record{}, fmt.Errorf("service.DraftService.Select: %w", domain.ErrNotFound)
	}
	return s.Current()
}

// Update merges the patch into the draft with the same id.
// Returns domain.ErrNotFound if no draft has that id.
func (s *DraftService) Update(ctx context.Context, patch domain.RecordPatch) (domain.Record, error) {
	result, ok, err := s.drafts.Update(ctx, patch)
	if err != nil {
		return domain.Record{}, fmt.Errorf("service.DraftService.Update: %w", err)
	}
	if !ok {
		return domain.Record{}, fmt.Errorf("service.DraftService.Update: %w", domain.ErrNotFound)
	}
	return result, nil
}

// Delete removes every draft whose providerId equals providerID and returns
// how many went.
func (s *DraftService) Delete(ctx context.Context, providerID string) (int, error) {
	n, err := s.drafts.Delete(ctx, providerID)
	if err != nil {
		return 0, fmt.Errorf("service.DraftService.Delete: %w", err)
	}
	return n, nil
}

// ClearAll removes every draft.
func (s *DraftService) ClearAll(ctx context.Context) error {
	if err := s.drafts.ClearAll(ctx); err != nil {
		return fmt.Errorf("service.DraftService.ClearAll: %w", err)
	}
	return nil
}

// SortByDate reorders the drafts by start date and flips the date toggle.
func (s *DraftService) SortByDate(ctx context.Context) ([]domain.Record, error) {
	result, err := s.drafts.SortByDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.DraftService.SortByDate: %w", err)
	}
	return result, nil
}

// SortByType reorders the drafts by service type and flips the type toggle.
func (s *DraftService) SortByType(ctx context.Context) ([]domain.Record, error) {
	result, err := s.drafts.SortByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.DraftService.SortByType: %w", err)
	}
	return result, nil
}

// SearchInput records a keystroke. The input is echoed at once; the store's
// query changes only when the debounce window closes.
func (s *DraftService) SearchInput(query string) SearchState {
	s.mu.Lock()
	s.input = query
	s.mu.Unlock()
	s.debounce.Call(query)
	return s.Search()
}

// Search reports the echoed input, the committed query and whether a
// commit is still pending.
func (s *DraftService) Search() SearchState {
	s.mu.Lock()
	input := s.input
	s.mu.Unlock()
	return SearchState{
		Input:     input,
		Committed: s.drafts.SearchQuery(),
		Pending:   s.debounce.Pending(),
	}
}

// Close commits any pending search input. Call it on shutdown.
func (s *DraftService) Close() {
	s.debounce.Flush()
}

func (s *DraftService) commitSearch(query string) {
	s.drafts.SetSearchQuery(query)
	s.log.Debug("search query committed", "query", query)
}
