// Package service contains the business logic for the service-log API.
// Services validate inputs, enforce business rules, and orchestrate store calls.
// No persistence lives here; services depend on store interfaces, not implementations.
package service

import (
	"context"

	"github.com/pkordes/servicelog/internal/domain"
)

// RecordStore is the record list behaviour shared by both stores.
// *store.DraftStore and *store.ServiceLogStore satisfy it.
type RecordStore interface {
	List() []domain.Record
	Len() int
	Current() (domain.Record, bool)
	Select(id string) bool
	Create(ctx context.Context, r domain.Record) (domain.Record, error)
	Update(ctx context.Context, patch domain.RecordPatch) (domain.Record, bool, error)
	Delete(ctx context.Context, providerID string) (int, error)
	ClearAll(ctx context.Context) error
}

// DraftStore adds the draft-only sort and search operations.
type DraftStore interface {
	RecordStore
	SortByDate(ctx context.Context) ([]domain.Record, error)
	SortByType(ctx context.Context) ([]domain.Record, error)
	SortToggles() (dateAscending, typeAscending bool)
	SetSearchQuery(query string)
	SearchQuery() string
	Filtered() []domain.Record
}
