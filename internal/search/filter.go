// Package search derives filtered views of record lists and coalesces bursts
// of query input into a single deferred dispatch.
package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/pkordes/servicelog/internal/domain"
)

// Filter returns the records whose ProviderID, ServiceOrder or TruckID
// contains query, ignoring case. Order is preserved. An empty query matches
// every record. The result never aliases records.
func Filter(records []domain.Record, query string) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	if query == "" {
		return append(out, records...)
	}

	// cases.Caser is stateful and not safe for concurrent use; one per call.
	fold := cases.Fold()
	needle := fold.String(query)
	for _, r := range records {
		if matches(fold, r, needle) {
			out = append(out, r)
		}
	}
	return out
}

func matches(fold cases.Caser, r domain.Record, needle string) bool {
	for _, field := range []string{r.ProviderID, r.ServiceOrder, r.TruckID} {
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}
	return false
}
