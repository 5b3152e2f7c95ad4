package store

import (
	"context"

	"github.com/pkordes/servicelog/internal/domain"
)

// ServiceLogStore is the staging list filled by the compose form.
// It has the shared mutations and no sorting or search.
type ServiceLogStore struct {
	base
}

// NewServiceLogStore builds a ServiceLogStore hydrated from the serviceLogs slot.
func NewServiceLogStore(ctx context.Context, p Persister, opts ...Option) (*ServiceLogStore, error) {
	s := &ServiceLogStore{}
	if err := s.hydrate(ctx, domain.ServiceLogsSlot, p, opts); err != nil {
		return nil, err
	}
	return s, nil
}
