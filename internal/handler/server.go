// Package handler implements the HTTP handlers for the service-log API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, drafts.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/servicelog/internal/domain"
	"github.com/pkordes/servicelog/internal/service"
)

// DraftServicer defines the draft operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the store or persistence.
type DraftServicer interface {
	Create(ctx context.Context, r domain.Record) (domain.Record, error)
	List() []domain.Record
	ListFiltered(p domain.PaginationParams) ([]domain.Record, int)
	Current() (domain.Record, error)
	Select(id string) (domain.Record, error)
	Update(ctx context.Context, patch domain.RecordPatch) (domain.Record, error)
	Delete(ctx context.Context, providerID string) (int, error)
	ClearAll(ctx context.Context) error
	SortByDate(ctx context.Context) ([]domain.Record, error)
	SortByType(ctx context.Context) ([]domain.Record, error)
	SearchInput(query string) service.SearchState
	Search() service.SearchState
}

// FormServicer defines the compose-form operations over the service-log list.
type FormServicer interface {
	Submit(ctx context.Context, form domain.ServiceLogForm) (domain.Record, string, error)
	List() []domain.Record
	Label() string
	Update(ctx context.Context, patch domain.RecordPatch) (domain.Record, error)
	Delete(ctx context.Context, providerID string) (int, error)
	DeleteCurrent(ctx context.Context) (string, error)
	ClearAll(ctx context.Context) (string, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	drafts  DraftServicer
	forms   FormServicer
	openapi []byte
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// openapi is the document served at /openapi.yaml; nil disables the route.
// A nil log falls back to slog.Default().
func NewServer(drafts DraftServicer, forms FormServicer, openapi []byte, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{drafts: drafts, forms: forms, openapi: openapi, log: log}
}

// Routes registers every endpoint on a fresh chi router.
// Cross-cutting middleware is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	if s.openapi != nil {
		r.Get("/openapi.yaml", s.GetOpenAPI)
	}

	r.Route("/drafts", func(r chi.Router) {
		r.Get("/", s.ListDrafts)
		r.Post("/", s.CreateDraft)
		r.Delete("/", s.ClearDrafts)
		r.Get("/current", s.GetCurrentDraft)
		r.Put("/current/{id}", s.SelectDraft)
		r.Patch("/{id}", s.UpdateDraft)
		r.Delete("/providers/{providerId}", s.DeleteDrafts)
		r.Post("/sort/date", s.SortDraftsByDate)
		r.Post("/sort/type", s.SortDraftsByType)
		r.Put("/search", s.SearchDrafts)
	})

	r.Route("/service-logs", func(r chi.Router) {
		r.Get("/", s.ListServiceLogs)
		r.Post("/", s.SubmitServiceLog)
		r.Delete("/", s.ClearServiceLogs)
		r.Patch("/{id}", s.UpdateServiceLog)
		r.Delete("/providers/{providerId}", s.DeleteServiceLogs)
		r.Delete("/current", s.DeleteCurrentServiceLog)
	})

	r.Get("/export", s.GetExport)
	return r
}

// compile-time checks: the services satisfy the handler interfaces.
var (
	_ DraftServicer = (*service.DraftService)(nil)
	_ FormServicer  = (*service.FormService)(nil)
)
