package store

import (
	"context"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pkordes/servicelog/internal/domain"
	"github.com/pkordes/servicelog/internal/search"
)

// DraftStore holds draft records, the two sort toggles and the committed
// search query. Create, Update, Delete, ClearAll, List, Current and Select
// are promoted from the shared record list.
type DraftStore struct {
	base

	ascendingByDate bool
	ascendingByType bool
	searchQuery     string

	// typeOrder is built once; a Collator is not safe for concurrent use,
	// so it is only touched under mu.
	typeOrder *collate.Collator
}

// NewDraftStore builds a DraftStore hydrated from the drafts slot.
// Both sort toggles start ascending.
func NewDraftStore(ctx context.Context, p Persister, opts ...Option) (*DraftStore, error) {
	s := &DraftStore{
		ascendingByDate: true,
		ascendingByType: true,
		typeOrder:       collate.New(language.Und),
	}
	if err := s.hydrate(ctx, domain.DraftsSlot, p, opts); err != nil {
		return nil, err
	}
	return s, nil
}

// SortByDate stable-sorts the drafts by StartDate in the direction of the
// date toggle, persists the new order, then flips the toggle.
// Dates that do not parse compare equal to everything.
func (s *DraftStore) SortByDate(ctx context.Context) ([]domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	asc := s.ascendingByDate
	next := slices.Clone(s.records)
	slices.SortStableFunc(next, func(a, b domain.Record) int {
		if asc {
			return compareDates(a.StartDate, b.StartDate)
		}
		return compareDates(b.StartDate, a.StartDate)
	})

	if err := s.commit(ctx, "DraftStore.SortByDate", next); err != nil {
		return nil, err
	}
	s.ascendingByDate = !asc
	return slices.Clone(next), nil
}

// SortByType stable-sorts the drafts by Type using locale collation in the
// direction of the type toggle, persists the new order, then flips the toggle.
func (s *DraftStore) SortByType(ctx context.Context) ([]domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	asc := s.ascendingByType
	col := s.typeOrder
	next := slices.Clone(s.records)
	slices.SortStableFunc(next, func(a, b domain.Record) int {
		if asc {
			return col.CompareString(string(a.Type), string(b.Type))
		}
		return col.CompareString(string(b.Type), string(a.Type))
	})

	if err := s.commit(ctx, "DraftStore.SortByType", next); err != nil {
		return nil, err
	}
	s.ascendingByType = !asc
	return slices.Clone(next), nil
}

// SortToggles reports the direction the next SortByDate and SortByType
// calls will use.
func (s *DraftStore) SortToggles() (dateAscending, typeAscending bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ascendingByDate, s.ascendingByType
}

// SetSearchQuery stores the raw query used by Filtered.
func (s *DraftStore) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

// SearchQuery returns the committed search query.
func (s *DraftStore) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// Filtered returns the drafts matching the committed search query.
func (s *DraftStore) Filtered() []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return search.Filter(s.records, s.searchQuery)
}

// compareDates orders ISO dates. If either side does not parse the pair is
// reported equal, which leaves such records where the stable sort finds them.
func compareDates(a, b string) int {
	ta, okA := parseDate(a)
	tb, okB := parseDate(b)
	if !okA || !okB {
		return 0
	}
	return ta.Compare(tb)
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
