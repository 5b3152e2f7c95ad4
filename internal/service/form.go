package service

import (
	"context"
	"fmt"

	"github.com/pkordes/servicelog/internal/domain"
)

// FormService backs the compose form: it turns a raw ServiceLogForm into a
// record in the service-log staging list and reports the status line the
// form shows after each action.
type FormService struct {
	logs RecordStore
}

// NewFormService constructs a FormService backed by the service-log store.
func NewFormService(logs RecordStore) *FormService {
	return &FormService{logs: logs}
}

// Submit normalizes and validates the form, then saves it as a new record.
// A form that fails validation yields domain.StatusIncomplete together with
// an error wrapping domain.ErrValidation; nothing is saved.
func (s *FormService) Submit(ctx context.Context, form domain.ServiceLogForm) (domain.Record, string, error) {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return domain.Record{}, domain.StatusIncomplete, err
	}
	result, err := s.logs.Create(ctx, form.Record())
	if err != nil {
		return domain.Record{}, "", fmt.Errorf("service.FormService.Submit: %w", err)
	}
	return result, domain.StatusSaved, nil
}

// List returns the staged service logs in order.
func (s *FormService) List() []domain.Record {
	return s.logs.List()
}

// Label is the heading shown above the staging list, e.g. "3 Drafts".
func (s *FormService) Label() string {
	return fmt.Sprintf("%d Drafts", s.logs.Len())
}

// Update merges the patch into the staged record with the same id.
// Returns domain.ErrNotFound if no record has that id.
func (s *FormService) Update(ctx context.Context, patch domain.RecordPatch) (domain.Record, error) {
	result, ok, err := s.logs.Update(ctx, patch)
	if err != nil {
		return domain.Record{}, fmt.Errorf("service.FormService.Update: %w", err)
	}
	if !ok {
		return domain.Record{}, fmt.Errorf("service.FormService.Update: %w", domain.ErrNotFound)
	}
	return result, nil
}

// Delete removes every staged record whose providerId equals providerID.
func (s *FormService) Delete(ctx context.Context, providerID string) (int, error) {
	n, err := s.logs.Delete(ctx, providerID)
	if err != nil {
		return 0, fmt.Errorf("service.FormService.Delete: %w", err)
	}
	return n, nil
}

// DeleteCurrent removes the current record, keyed by its providerId.
// With nothing current it returns domain.StatusNoCurrent and changes nothing.
func (s *FormService) DeleteCurrent(ctx context.Context) (string, error) {
	current, ok := s.logs.Current()
	if !ok {
		return domain.StatusNoCurrent, nil
	}
	if _, err := s.logs.Delete(ctx, current.ProviderID); err != nil {
		return "", fmt.Errorf("service.FormService.DeleteCurrent: %w", err)
	}
	return domain.StatusDeleted, nil
}

// ClearAll empties the staging list.
func (s *FormService) ClearAll(ctx context.Context) (string, error) {
	if err := s.logs.ClearAll(ctx); err != nil {
		return "", fmt.Errorf("service.FormService.ClearAll: %w", err)
	}
	return domain.StatusCleared, nil
}
